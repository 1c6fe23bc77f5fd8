package services

import (
	"context"
	"strings"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
)

// CarService defines the interface for vehicle record operations
type CarService interface {
	CreateCar(ctx context.Context, req dto.CreateCarRequest) (int64, error)
	GetCarByID(ctx context.Context, id int64) (*models.Car, error)
	UpdateCarByID(ctx context.Context, id int64, req dto.UpdateCarRequest) error
	DeleteCarByID(ctx context.Context, id int64) error
}

// carServiceImpl implements the CarService interface
type carServiceImpl struct {
	carStore CarStore
}

// NewCarService creates a new car service instance
func NewCarService(carStore CarStore) CarService {
	return &carServiceImpl{carStore: carStore}
}

func validateCarFields(name string, carType, userCount, subjectType int) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("car name cannot be empty")
	}
	carClass := models.LicenseClass(carType)
	if !carClass.Valid() || carClass == models.LicenseClassNone {
		return apperrors.NewValidationError("carType must be 1 or 2")
	}
	if userCount < 0 {
		return apperrors.NewValidationError("userCount cannot be negative")
	}
	if subjectType < 0 || subjectType > models.MaxStageNumber {
		return apperrors.NewValidationError("subjectType must be between 0 and 4")
	}
	return nil
}

// CreateCar registers a vehicle; availability defaults to true and the load
// counter to zero when omitted
func (s *carServiceImpl) CreateCar(ctx context.Context, req dto.CreateCarRequest) (int64, error) {
	car := &models.Car{
		Name:        req.Name,
		CarType:     models.LicenseClass(req.CarType),
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		car.IsAvailable = *req.IsAvailable
	}
	if req.UserCount != nil {
		car.UserCount = *req.UserCount
	}
	if req.SubjectType != nil {
		car.SubjectType = *req.SubjectType
	}

	if err := validateCarFields(car.Name, int(car.CarType), car.UserCount, car.SubjectType); err != nil {
		return 0, err
	}

	return s.carStore.Create(ctx, car)
}

// GetCarByID returns the vehicle or (nil, nil) when absent
func (s *carServiceImpl) GetCarByID(ctx context.Context, id int64) (*models.Car, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid car id")
	}
	return s.carStore.GetByID(ctx, id)
}

// UpdateCarByID replaces every mutable field of the vehicle
func (s *carServiceImpl) UpdateCarByID(ctx context.Context, id int64, req dto.UpdateCarRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid car id")
	}
	if err := validateCarFields(req.Name, req.CarType, req.UserCount, req.SubjectType); err != nil {
		return err
	}

	car := &models.Car{
		Name:        req.Name,
		CarType:     models.LicenseClass(req.CarType),
		IsAvailable: req.IsAvailable,
		UserCount:   req.UserCount,
		SubjectType: req.SubjectType,
	}
	return s.carStore.UpdateByID(ctx, id, car)
}

// DeleteCarByID removes one vehicle and, through the storage cascade,
// every booking that references it
func (s *carServiceImpl) DeleteCarByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid car id")
	}
	return s.carStore.DeleteByID(ctx, id)
}
