package models

// Car defines a training/exam vehicle based on the 'cars' table
type Car struct {
	ID          int64        `json:"id" db:"car_id" example:"1"`            // Unique identifier for the car
	Name        string       `json:"name" db:"car_name" example:"Santana 3000"`
	CarType     LicenseClass `json:"carType" db:"car_type" example:"1"`     // License class the car is rated for
	IsAvailable bool         `json:"isAvailable" db:"is_available"`         // Whether the car can take bookings
	UserCount   int          `json:"userCount" db:"user_count" example:"0"` // Current assignment load
	SubjectType int          `json:"subjectType" db:"subject_type" example:"2"` // Exam stage the car is provisioned for
}
