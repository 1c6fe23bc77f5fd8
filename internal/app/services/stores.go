package services

import (
	"context"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/repositories"
)

// Store interfaces narrow the repositories to what each service needs,
// and let tests substitute fakes. The concrete repositories satisfy them.

// UserStore is the student data-access contract
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	CreateBulk(ctx context.Context, users []*models.User) ([]int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByFilter(ctx context.Context, filter dto.UserFilter) ([]*models.User, error)
	UpdateByID(ctx context.Context, id int64, update repositories.UserUpdate) error
	UpdateByUsername(ctx context.Context, username string, update repositories.UserUpdate) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByUsername(ctx context.Context, username string) error
	DeleteByFilter(ctx context.Context, filter dto.UserFilter) (int64, error)
}

// CarStore is the vehicle data-access contract
type CarStore interface {
	Create(ctx context.Context, car *models.Car) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Car, error)
	UpdateByID(ctx context.Context, id int64, car *models.Car) error
	DeleteByID(ctx context.Context, id int64) error
}

// SubjectStore is the booking data-access contract
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	UpdateByID(ctx context.Context, id int64, subject *models.Subject) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByUserAndCar(ctx context.Context, userID, carID int64) error
}
