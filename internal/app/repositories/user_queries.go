package repositories

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
)

// psql builds statements with Postgres-style $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// userColumns lists the users table columns in scan order
var userColumns = []string{
	"user_id", "gender", "password", "username", "birthday", "contact",
	"subject_type", "subject_1", "subject_2", "subject_3", "subject_4", "is_admin",
}

func buildInsertUserQuery(u *models.User) (string, []interface{}, error) {
	return psql.Insert("users").
		Columns("gender", "password", "username", "birthday", "contact",
			"subject_type", "subject_1", "subject_2", "subject_3", "subject_4", "is_admin").
		Values(u.Gender, u.Password, u.Username, u.Birthday, u.Contact,
			u.SubjectType, u.Subject1, u.Subject2, u.Subject3, u.Subject4, u.IsAdmin).
		Suffix("RETURNING user_id").
		ToSql()
}

// buildBulkInsertUsersQuery inserts every record in one statement and returns
// the assigned ids directly, in VALUES order.
func buildBulkInsertUsersQuery(users []*models.User) (string, []interface{}, error) {
	q := psql.Insert("users").
		Columns("gender", "password", "username", "birthday", "contact",
			"subject_type", "subject_1", "subject_2", "subject_3", "subject_4", "is_admin")
	for _, u := range users {
		q = q.Values(u.Gender, u.Password, u.Username, u.Birthday, u.Contact,
			u.SubjectType, u.Subject1, u.Subject2, u.Subject3, u.Subject4, u.IsAdmin)
	}
	return q.Suffix("RETURNING user_id").ToSql()
}

func buildSelectUserByIDQuery(id int64) (string, []interface{}, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		Limit(1).
		ToSql()
}

func buildSelectUserByUsernameQuery(username string) (string, []interface{}, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
}

// userFilterPredicate turns a filter into a squirrel conjunction.
// UserID short-circuits everything else, then Username; any remaining
// non-nil fields are ANDed together. An empty filter matches all rows.
func userFilterPredicate(f dto.UserFilter) squirrel.Eq {
	if f.UserID != nil {
		return squirrel.Eq{"user_id": *f.UserID}
	}
	if f.Username != nil {
		return squirrel.Eq{"username": *f.Username}
	}

	eq := squirrel.Eq{}
	if f.Gender != nil {
		eq["gender"] = *f.Gender
	}
	if f.Birthday != nil {
		if t, err := time.Parse("2006-01-02", *f.Birthday); err == nil {
			eq["birthday"] = t
		} else {
			eq["birthday"] = *f.Birthday
		}
	}
	if f.Contact != nil {
		eq["contact"] = *f.Contact
	}
	if f.SubjectType != nil {
		eq["subject_type"] = *f.SubjectType
	}
	if f.Subject1 != nil {
		eq["subject_1"] = *f.Subject1
	}
	if f.Subject2 != nil {
		eq["subject_2"] = *f.Subject2
	}
	if f.Subject3 != nil {
		eq["subject_3"] = *f.Subject3
	}
	if f.Subject4 != nil {
		eq["subject_4"] = *f.Subject4
	}
	return eq
}

func buildSelectUsersByFilterQuery(f dto.UserFilter) (string, []interface{}, error) {
	q := psql.Select(userColumns...).From("users").OrderBy("user_id ASC")
	pred := userFilterPredicate(f)
	if len(pred) > 0 {
		q = q.Where(pred)
	}
	return q.ToSql()
}

// UserUpdate is the optional-field update form at the storage layer.
// Only non-nil fields become SET clauses. Password must already be hashed
// and Birthday already parsed by the caller.
type UserUpdate struct {
	Gender      *models.Gender
	Username    *string
	Password    *string
	Birthday    *time.Time
	Contact     *string
	SubjectType *models.LicenseClass
	Subject1    *bool
	Subject2    *bool
	Subject3    *bool
	Subject4    *bool
}

// setMap collects the non-nil fields into SET clauses
func (u UserUpdate) setMap() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Gender != nil {
		set["gender"] = *u.Gender
	}
	if u.Username != nil {
		set["username"] = *u.Username
	}
	if u.Password != nil {
		set["password"] = *u.Password
	}
	if u.Birthday != nil {
		set["birthday"] = *u.Birthday
	}
	if u.Contact != nil {
		set["contact"] = *u.Contact
	}
	if u.SubjectType != nil {
		set["subject_type"] = *u.SubjectType
	}
	if u.Subject1 != nil {
		set["subject_1"] = *u.Subject1
	}
	if u.Subject2 != nil {
		set["subject_2"] = *u.Subject2
	}
	if u.Subject3 != nil {
		set["subject_3"] = *u.Subject3
	}
	if u.Subject4 != nil {
		set["subject_4"] = *u.Subject4
	}
	return set
}

// Empty reports whether the update carries no SET clauses
func (u UserUpdate) Empty() bool {
	return len(u.setMap()) == 0
}

func buildUpdateUserByIDQuery(id int64, update UserUpdate) (string, []interface{}, error) {
	return psql.Update("users").
		SetMap(update.setMap()).
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
}

func buildDeleteUserByIDQuery(id int64) (string, []interface{}, error) {
	return psql.Delete("users").Where(squirrel.Eq{"user_id": id}).ToSql()
}

func buildDeleteUserByUsernameQuery(username string) (string, []interface{}, error) {
	return psql.Delete("users").Where(squirrel.Eq{"username": username}).ToSql()
}

func buildDeleteUsersByFilterQuery(f dto.UserFilter) (string, []interface{}, error) {
	q := psql.Delete("users")
	pred := userFilterPredicate(f)
	if len(pred) > 0 {
		q = q.Where(pred)
	}
	return q.ToSql()
}
