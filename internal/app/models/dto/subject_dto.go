package dto

import "github.com/lansen/driveadmin/internal/app/models"

// CreateSubjectRequest books an exam stage for a student on a car
type CreateSubjectRequest struct {
	UserID        int64 `json:"userId" binding:"required,min=1"`
	CarID         int64 `json:"carId" binding:"required,min=1"`
	SubjectType   int   `json:"subjectType" binding:"required,oneof=1 2"`
	SubjectNumber int   `json:"subjectNumber" binding:"required,min=1,max=4"`
}

// UpdateSubjectRequest replaces every mutable field of a booking
type UpdateSubjectRequest struct {
	UserID        int64 `json:"userId" binding:"required,min=1"`
	CarID         int64 `json:"carId" binding:"required,min=1"`
	SubjectType   int   `json:"subjectType" binding:"required,oneof=1 2"`
	SubjectNumber int   `json:"subjectNumber" binding:"required,min=1,max=4"`
}

// SubjectResponse is the serialized form of a booking
type SubjectResponse struct {
	ID            int64 `json:"subjectId" example:"1"`
	UserID        int64 `json:"userId" example:"1"`
	CarID         int64 `json:"carId" example:"1"`
	SubjectType   int   `json:"subjectType" example:"1"`
	SubjectNumber int   `json:"subjectNumber" example:"2"`
}

// NewSubjectResponse maps a booking to its serialized form
func NewSubjectResponse(s *models.Subject) *SubjectResponse {
	if s == nil {
		return nil
	}
	return &SubjectResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		CarID:         s.CarID,
		SubjectType:   int(s.SubjectType),
		SubjectNumber: s.SubjectNumber,
	}
}
