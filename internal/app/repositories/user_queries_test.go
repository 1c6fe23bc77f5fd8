package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
)

func sampleUser(username string) *models.User {
	birthday := time.Date(2001, time.May, 10, 0, 0, 0, 0, time.UTC)
	return &models.User{
		Gender:      models.GenderMale,
		Password:    "$2a$12$hash",
		Username:    username,
		Birthday:    &birthday,
		Contact:     "13800000000",
		SubjectType: models.LicenseClassC1,
	}
}

func TestBuildInsertUserQuery(t *testing.T) {
	sql, args, err := buildInsertUserQuery(sampleUser("li.na"))
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO users")
	assert.Contains(t, sql, "RETURNING user_id")
	assert.Contains(t, sql, "$11")
	assert.Len(t, args, 11)
	assert.Equal(t, "li.na", args[2])
}

func TestBuildBulkInsertUsersQuery(t *testing.T) {
	users := []*models.User{sampleUser("a"), sampleUser("b"), sampleUser("c")}

	sql, args, err := buildBulkInsertUsersQuery(users)
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO users")
	assert.Contains(t, sql, "RETURNING user_id")
	assert.Contains(t, sql, "$33")
	assert.Len(t, args, 33)
}

func TestBuildSelectUserQueries(t *testing.T) {
	sql, args, err := buildSelectUserByIDQuery(7)
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM users")
	assert.Contains(t, sql, "user_id = $1")
	assert.Contains(t, sql, "LIMIT 1")
	assert.Equal(t, []interface{}{int64(7)}, args)

	sql, args, err = buildSelectUserByUsernameQuery("li.na")
	require.NoError(t, err)
	assert.Contains(t, sql, "username = $1")
	assert.Equal(t, []interface{}{"li.na"}, args)
}

func TestUserFilterPredicatePriority(t *testing.T) {
	id := int64(5)
	username := "li.na"
	gender := 2

	t.Run("user id wins over everything", func(t *testing.T) {
		pred := userFilterPredicate(dto.UserFilter{UserID: &id, Username: &username, Gender: &gender})
		require.Len(t, pred, 1)
		assert.Equal(t, id, pred["user_id"])
	})

	t.Run("username wins over attributes", func(t *testing.T) {
		pred := userFilterPredicate(dto.UserFilter{Username: &username, Gender: &gender})
		require.Len(t, pred, 1)
		assert.Equal(t, username, pred["username"])
	})

	t.Run("attributes are combined", func(t *testing.T) {
		s1 := true
		pred := userFilterPredicate(dto.UserFilter{Gender: &gender, Subject1: &s1})
		require.Len(t, pred, 2)
		assert.Equal(t, gender, pred["gender"])
		assert.Equal(t, s1, pred["subject_1"])
	})

	t.Run("birthday string becomes a date", func(t *testing.T) {
		birthday := "2001-05-10"
		pred := userFilterPredicate(dto.UserFilter{Birthday: &birthday})
		got, ok := pred["birthday"].(time.Time)
		require.True(t, ok)
		assert.Equal(t, 2001, got.Year())
	})

	t.Run("empty filter matches all", func(t *testing.T) {
		pred := userFilterPredicate(dto.UserFilter{})
		assert.Empty(t, pred)
	})
}

func TestBuildSelectUsersByFilterQuery(t *testing.T) {
	t.Run("empty filter has no where clause", func(t *testing.T) {
		sql, args, err := buildSelectUsersByFilterQuery(dto.UserFilter{})
		require.NoError(t, err)
		assert.NotContains(t, sql, "WHERE")
		assert.Contains(t, sql, "ORDER BY user_id ASC")
		assert.Empty(t, args)
	})

	t.Run("filter fields become conditions", func(t *testing.T) {
		gender := 1
		sql, args, err := buildSelectUsersByFilterQuery(dto.UserFilter{Gender: &gender})
		require.NoError(t, err)
		assert.Contains(t, sql, "gender = $1")
		assert.Equal(t, []interface{}{1}, args)
	})
}

func TestUserUpdateSetMap(t *testing.T) {
	assert.True(t, UserUpdate{}.Empty())

	contact := "13900000000"
	hash := "$2a$12$newhash"
	update := UserUpdate{Contact: &contact, Password: &hash}
	assert.False(t, update.Empty())

	set := update.setMap()
	require.Len(t, set, 2)
	assert.Equal(t, contact, set["contact"])
	assert.Equal(t, hash, set["password"])
}

func TestBuildUpdateUserByIDQuery(t *testing.T) {
	contact := "13900000000"
	sql, args, err := buildUpdateUserByIDQuery(7, UserUpdate{Contact: &contact})
	require.NoError(t, err)

	assert.Contains(t, sql, "UPDATE users SET contact = $1")
	assert.Contains(t, sql, "user_id = $2")
	assert.Equal(t, []interface{}{contact, int64(7)}, args)
}

func TestBuildDeleteUserQueries(t *testing.T) {
	sql, args, err := buildDeleteUserByIDQuery(7)
	require.NoError(t, err)
	assert.Contains(t, sql, "DELETE FROM users")
	assert.Contains(t, sql, "user_id = $1")
	assert.Equal(t, []interface{}{int64(7)}, args)

	sql, args, err = buildDeleteUserByUsernameQuery("li.na")
	require.NoError(t, err)
	assert.Contains(t, sql, "username = $1")
	assert.Equal(t, []interface{}{"li.na"}, args)

	gender := 1
	sql, args, err = buildDeleteUsersByFilterQuery(dto.UserFilter{Gender: &gender})
	require.NoError(t, err)
	assert.Contains(t, sql, "DELETE FROM users WHERE gender = $1")
	assert.Equal(t, []interface{}{1}, args)
}
