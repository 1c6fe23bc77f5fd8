package services

import (
	"context"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
)

// SubjectService defines the interface for exam booking operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (int64, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	UpdateSubjectByID(ctx context.Context, id int64, req dto.UpdateSubjectRequest) error
	DeleteSubjectByID(ctx context.Context, id int64) error
	DeleteSubjectByUserAndCar(ctx context.Context, userID, carID int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectStore SubjectStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectStore SubjectStore) SubjectService {
	return &subjectServiceImpl{subjectStore: subjectStore}
}

func validateBookingFields(userID, carID int64, subjectType, subjectNumber int) error {
	if userID <= 0 {
		return apperrors.NewValidationError("invalid user id")
	}
	if carID <= 0 {
		return apperrors.NewValidationError("invalid car id")
	}
	licenseClass := models.LicenseClass(subjectType)
	if !licenseClass.Valid() || licenseClass == models.LicenseClassNone {
		return apperrors.NewValidationError("subjectType must be 1 or 2")
	}
	if subjectNumber < models.MinStageNumber || subjectNumber > models.MaxStageNumber {
		return apperrors.NewValidationError("subjectNumber must be between 1 and 4")
	}
	return nil
}

// CreateSubject books an exam stage; the (user, car) pair must be unused
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (int64, error) {
	if err := validateBookingFields(req.UserID, req.CarID, req.SubjectType, req.SubjectNumber); err != nil {
		return 0, err
	}

	subject := &models.Subject{
		UserID:        req.UserID,
		CarID:         req.CarID,
		SubjectType:   models.LicenseClass(req.SubjectType),
		SubjectNumber: req.SubjectNumber,
	}
	return s.subjectStore.Create(ctx, subject)
}

// GetSubjectByID returns the booking or (nil, nil) when absent
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid subject id")
	}
	return s.subjectStore.GetByID(ctx, id)
}

// UpdateSubjectByID replaces every mutable field of the booking
func (s *subjectServiceImpl) UpdateSubjectByID(ctx context.Context, id int64, req dto.UpdateSubjectRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid subject id")
	}
	if err := validateBookingFields(req.UserID, req.CarID, req.SubjectType, req.SubjectNumber); err != nil {
		return err
	}

	subject := &models.Subject{
		UserID:        req.UserID,
		CarID:         req.CarID,
		SubjectType:   models.LicenseClass(req.SubjectType),
		SubjectNumber: req.SubjectNumber,
	}
	return s.subjectStore.UpdateByID(ctx, id, subject)
}

// DeleteSubjectByID removes one booking
func (s *subjectServiceImpl) DeleteSubjectByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid subject id")
	}
	return s.subjectStore.DeleteByID(ctx, id)
}

// DeleteSubjectByUserAndCar removes the booking identified by the pair
func (s *subjectServiceImpl) DeleteSubjectByUserAndCar(ctx context.Context, userID, carID int64) error {
	if userID <= 0 || carID <= 0 {
		return apperrors.NewValidationError("invalid user or car id")
	}
	return s.subjectStore.DeleteByUserAndCar(ctx, userID, carID)
}
