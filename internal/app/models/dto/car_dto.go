package dto

import "github.com/lansen/driveadmin/internal/app/models"

// CreateCarRequest carries the fields for a new vehicle record.
// Availability defaults to true and the load counter to zero when omitted.
type CreateCarRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=64"`
	CarType     int    `json:"carType" binding:"required,oneof=1 2"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
	UserCount   *int   `json:"userCount,omitempty" binding:"omitempty,min=0"`
	SubjectType *int   `json:"subjectType,omitempty" binding:"omitempty,min=0,max=4"`
}

// UpdateCarRequest replaces every mutable field of a vehicle record
type UpdateCarRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=64"`
	CarType     int    `json:"carType" binding:"required,oneof=1 2"`
	IsAvailable bool   `json:"isAvailable"`
	UserCount   int    `json:"userCount" binding:"min=0"`
	SubjectType int    `json:"subjectType" binding:"min=0,max=4"`
}

// CarResponse is the serialized form of a vehicle record
type CarResponse struct {
	ID          int64  `json:"carId" example:"1"`
	Name        string `json:"carName" example:"Santana 3000"`
	CarType     int    `json:"carType" example:"1"`
	IsAvailable bool   `json:"isAvailable" example:"true"`
	UserCount   int    `json:"userCount" example:"0"`
	SubjectType int    `json:"subjectType" example:"2"`
}

// NewCarResponse maps a vehicle record to its serialized form
func NewCarResponse(c *models.Car) *CarResponse {
	if c == nil {
		return nil
	}
	return &CarResponse{
		ID:          c.ID,
		Name:        c.Name,
		CarType:     int(c.CarType),
		IsAvailable: c.IsAvailable,
		UserCount:   c.UserCount,
		SubjectType: c.SubjectType,
	}
}
