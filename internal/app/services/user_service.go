package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/repositories"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/auth"
	"github.com/lansen/driveadmin/internal/pkg/dates"
)

// UserService defines the interface for student record operations
type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (int64, error)
	CreateUsersBulk(ctx context.Context, reqs []dto.CreateUserRequest) ([]int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUsersByFilter(ctx context.Context, filter dto.UserFilter) ([]*models.User, error)
	UpdateUserByID(ctx context.Context, id int64, req dto.UpdateUserRequest) error
	UpdateUserByUsername(ctx context.Context, username string, req dto.UpdateUserRequest) error
	DeleteUserByID(ctx context.Context, id int64) error
	DeleteUserByUsername(ctx context.Context, username string) error
	DeleteUsersByFilter(ctx context.Context, filter dto.UserFilter) (int64, error)
	CheckPassword(ctx context.Context, username, password string) (bool, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore    UserStore
	maxBirthYear int
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore, maxBirthYear int) UserService {
	if maxBirthYear <= 0 {
		maxBirthYear = dates.DefaultMaxYear
	}
	return &userServiceImpl{
		userStore:    userStore,
		maxBirthYear: maxBirthYear,
	}
}

// parseBirthday parses and bounds-checks an optional birthday string
func (s *userServiceImpl) parseBirthday(raw *string) (*time.Time, error) {
	birthday, err := dates.ParseDate(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("birthday must be in YYYY-MM-DD format")
	}
	if birthday != nil && !dates.IsValidDate(birthday.Year(), int(birthday.Month()), birthday.Day(), s.maxBirthYear) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("birthday year must be between 1 and %d", s.maxBirthYear))
	}
	return birthday, nil
}

// newUserFromRequest validates the request, hashes the password and applies
// defaults for the optional exam fields
func (s *userServiceImpl) newUserFromRequest(req dto.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}
	if !models.Gender(req.Gender).Valid() {
		return nil, apperrors.NewValidationError("gender must be 1 or 2")
	}

	birthday, err := s.parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Gender:   models.Gender(req.Gender),
		Password: hash,
		Username: req.Username,
		Birthday: birthday,
		Contact:  req.Contact,
	}
	if req.SubjectType != nil {
		if !models.LicenseClass(*req.SubjectType).Valid() {
			return nil, apperrors.NewValidationError("subjectType must be 0, 1 or 2")
		}
		user.SubjectType = models.LicenseClass(*req.SubjectType)
	}
	if req.Subject1 != nil {
		user.Subject1 = *req.Subject1
	}
	if req.Subject2 != nil {
		user.Subject2 = *req.Subject2
	}
	if req.Subject3 != nil {
		user.Subject3 = *req.Subject3
	}
	if req.Subject4 != nil {
		user.Subject4 = *req.Subject4
	}

	return user, nil
}

// CreateUser registers a single student and returns the assigned id
func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (int64, error) {
	user, err := s.newUserFromRequest(req)
	if err != nil {
		return 0, err
	}

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateUsersBulk registers a batch of students in one transaction and
// returns their ids in input order
func (s *userServiceImpl) CreateUsersBulk(ctx context.Context, reqs []dto.CreateUserRequest) ([]int64, error) {
	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("at least one user is required")
	}

	users := make([]*models.User, 0, len(reqs))
	for i, req := range reqs {
		user, err := s.newUserFromRequest(req)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", i, err)
		}
		users = append(users, user)
	}

	ids, err := s.userStore.CreateBulk(ctx, users)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetUserByID returns the student or (nil, nil) when absent
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}
	return s.userStore.GetByID(ctx, id)
}

// GetUserByUsername returns the student or (nil, nil) when absent
func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}
	return s.userStore.GetByUsername(ctx, username)
}

// GetUsersByFilter returns every matching student, possibly none
func (s *userServiceImpl) GetUsersByFilter(ctx context.Context, filter dto.UserFilter) ([]*models.User, error) {
	return s.userStore.GetByFilter(ctx, filter)
}

// updateFromRequest converts the partial-update form to the storage update,
// re-hashing the password and re-parsing the birthday when present
func (s *userServiceImpl) updateFromRequest(req dto.UpdateUserRequest) (repositories.UserUpdate, error) {
	update := repositories.UserUpdate{
		Username: req.Username,
		Contact:  req.Contact,
		Subject1: req.Subject1,
		Subject2: req.Subject2,
		Subject3: req.Subject3,
		Subject4: req.Subject4,
	}

	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		if !g.Valid() {
			return repositories.UserUpdate{}, apperrors.NewValidationError("gender must be 1 or 2")
		}
		update.Gender = &g
	}
	if req.SubjectType != nil {
		c := models.LicenseClass(*req.SubjectType)
		if !c.Valid() {
			return repositories.UserUpdate{}, apperrors.NewValidationError("subjectType must be 0, 1 or 2")
		}
		update.SubjectType = &c
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return repositories.UserUpdate{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.Password = &hash
	}
	if req.Birthday != nil {
		birthday, err := s.parseBirthday(req.Birthday)
		if err != nil {
			return repositories.UserUpdate{}, err
		}
		update.Birthday = birthday
	}

	return update, nil
}

// UpdateUserByID applies only the fields present in the request
func (s *userServiceImpl) UpdateUserByID(ctx context.Context, id int64, req dto.UpdateUserRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid user id")
	}
	if req.Empty() {
		return apperrors.NewValidationError("no fields to update")
	}

	update, err := s.updateFromRequest(req)
	if err != nil {
		return err
	}
	return s.userStore.UpdateByID(ctx, id, update)
}

// UpdateUserByUsername resolves the username and applies the partial update
func (s *userServiceImpl) UpdateUserByUsername(ctx context.Context, username string, req dto.UpdateUserRequest) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.NewValidationError("username cannot be empty")
	}
	if req.Empty() {
		return apperrors.NewValidationError("no fields to update")
	}

	update, err := s.updateFromRequest(req)
	if err != nil {
		return err
	}
	return s.userStore.UpdateByUsername(ctx, username, update)
}

// DeleteUserByID removes one student and, through the storage cascade,
// every booking that references them
func (s *userServiceImpl) DeleteUserByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid user id")
	}
	return s.userStore.DeleteByID(ctx, id)
}

// DeleteUserByUsername removes the student with the given username
func (s *userServiceImpl) DeleteUserByUsername(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.NewValidationError("username cannot be empty")
	}
	return s.userStore.DeleteByUsername(ctx, username)
}

// DeleteUsersByFilter removes every matching student. An empty filter is
// rejected so a missing query string cannot wipe the table.
func (s *userServiceImpl) DeleteUsersByFilter(ctx context.Context, filter dto.UserFilter) (int64, error) {
	if filter == (dto.UserFilter{}) {
		return 0, apperrors.NewValidationError("at least one filter field is required")
	}
	return s.userStore.DeleteByFilter(ctx, filter)
}

// CheckPassword verifies a plaintext password against the stored hash.
// An unknown username is reported as ErrUserNotFound rather than a mismatch.
func (s *userServiceImpl) CheckPassword(ctx context.Context, username, password string) (bool, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperrors.ErrUserNotFound
	}
	return auth.CheckPassword(user.Password, password), nil
}
