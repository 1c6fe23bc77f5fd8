package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/repositories"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/auth"
)

// fakeUserStore is an in-memory UserStore for service tests
type fakeUserStore struct {
	users      map[int64]*models.User
	nextID     int64
	lastUpdate repositories.UserUpdate
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserStore) CreateBulk(ctx context.Context, users []*models.User) ([]int64, error) {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		id, err := f.Create(ctx, u)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByFilter(ctx context.Context, filter dto.UserFilter) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) UpdateByID(ctx context.Context, id int64, update repositories.UserUpdate) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.lastUpdate = update
	return nil
}

func (f *fakeUserStore) UpdateByUsername(ctx context.Context, username string, update repositories.UserUpdate) error {
	u, _ := f.GetByUsername(ctx, username)
	if u == nil {
		return apperrors.ErrUserNotFound
	}
	return f.UpdateByID(ctx, u.ID, update)
}

func (f *fakeUserStore) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) DeleteByUsername(ctx context.Context, username string) error {
	u, _ := f.GetByUsername(ctx, username)
	if u == nil {
		return apperrors.ErrUserNotFound
	}
	return f.DeleteByID(ctx, u.ID)
}

func (f *fakeUserStore) DeleteByFilter(ctx context.Context, filter dto.UserFilter) (int64, error) {
	n := int64(len(f.users))
	f.users = map[int64]*models.User{}
	return n, nil
}

func validCreateRequest(username string) dto.CreateUserRequest {
	birthday := "2001-05-10"
	return dto.CreateUserRequest{
		Gender:   1,
		Username: username,
		Password: "secret123",
		Contact:  "13800000000",
		Birthday: &birthday,
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, 0)

	id, err := svc.CreateUser(context.Background(), validCreateRequest("li.na"))
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	stored := store.users[id]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
	require.NotNil(t, stored.Birthday)
	assert.Equal(t, 2001, stored.Birthday.Year())
}

func TestCreateUserValidation(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, 0)

	t.Run("bad gender", func(t *testing.T) {
		req := validCreateRequest("a")
		req.Gender = 3
		_, err := svc.CreateUser(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("blank username", func(t *testing.T) {
		req := validCreateRequest("   ")
		_, err := svc.CreateUser(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("malformed birthday", func(t *testing.T) {
		req := validCreateRequest("b")
		bad := "10/05/2001"
		req.Birthday = &bad
		_, err := svc.CreateUser(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("birthday year above bound", func(t *testing.T) {
		req := validCreateRequest("c")
		future := "2023-01-01"
		req.Birthday = &future
		_, err := svc.CreateUser(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("leap day on non-leap year", func(t *testing.T) {
		req := validCreateRequest("d")
		bad := "2019-02-29"
		req.Birthday = &bad
		_, err := svc.CreateUser(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), validCreateRequest("dupe"))
		require.NoError(t, err)
		_, err = svc.CreateUser(context.Background(), validCreateRequest("dupe"))
		assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	})
}

func TestCreateUsersBulk(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, 0)

	t.Run("ids come back in input order", func(t *testing.T) {
		ids, err := svc.CreateUsersBulk(context.Background(), []dto.CreateUserRequest{
			validCreateRequest("a"), validCreateRequest("b"), validCreateRequest("c"),
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		_, err := svc.CreateUsersBulk(context.Background(), nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("one bad record fails the batch", func(t *testing.T) {
		bad := validCreateRequest("e")
		bad.Gender = 9
		_, err := svc.CreateUsersBulk(context.Background(), []dto.CreateUserRequest{
			validCreateRequest("d"), bad,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestGetUserMissingIsNotAnError(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), 0)

	user, err := svc.GetUserByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.GetUserByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, 0)

	id, err := svc.CreateUser(context.Background(), validCreateRequest("li.na"))
	require.NoError(t, err)

	t.Run("empty update rejected", func(t *testing.T) {
		err := svc.UpdateUserByID(context.Background(), id, dto.UpdateUserRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		newPassword := "newsecret"
		err := svc.UpdateUserByID(context.Background(), id, dto.UpdateUserRequest{Password: &newPassword})
		require.NoError(t, err)
		require.NotNil(t, store.lastUpdate.Password)
		assert.NotEqual(t, newPassword, *store.lastUpdate.Password)
		assert.True(t, auth.CheckPassword(*store.lastUpdate.Password, newPassword))
	})

	t.Run("bad birthday rejected", func(t *testing.T) {
		bad := "2023-01-01"
		err := svc.UpdateUserByID(context.Background(), id, dto.UpdateUserRequest{Birthday: &bad})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown id", func(t *testing.T) {
		contact := "13900000000"
		err := svc.UpdateUserByID(context.Background(), 99, dto.UpdateUserRequest{Contact: &contact})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestDeleteUsersByFilterRequiresAFilter(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, 0)

	_, err := svc.CreateUser(context.Background(), validCreateRequest("li.na"))
	require.NoError(t, err)

	_, err = svc.DeleteUsersByFilter(context.Background(), dto.UserFilter{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Len(t, store.users, 1, "an empty filter must not wipe the table")

	gender := 1
	deleted, err := svc.DeleteUsersByFilter(context.Background(), dto.UserFilter{Gender: &gender})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestCheckPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, 0)

	_, err := svc.CreateUser(context.Background(), validCreateRequest("li.na"))
	require.NoError(t, err)

	valid, err := svc.CheckPassword(context.Background(), "li.na", "secret123")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.CheckPassword(context.Background(), "li.na", "wrong")
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = svc.CheckPassword(context.Background(), "ghost", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
