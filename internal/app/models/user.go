package models

import (
	"time"
)

// User defines a student record based on the 'users' table
type User struct {
	ID          int64        `json:"id" db:"user_id" example:"1"`            // Unique identifier for the student
	Gender      Gender       `json:"gender" db:"gender" example:"1"`         // 1 male, 2 female
	Password    string       `json:"-" db:"password"`                        // Hashed password (excluded from JSON)
	Username    string       `json:"username" db:"username" example:"li.na"` // Unique login name
	Birthday    *time.Time   `json:"birthday,omitempty" db:"birthday"`       // Date of birth (nullable)
	Contact     string       `json:"contact" db:"contact" example:"13800000000"`
	SubjectType LicenseClass `json:"subjectType" db:"subject_type" example:"1"` // License class pursued (0 unassigned)
	Subject1    bool         `json:"subject1" db:"subject_1"`                   // Stage 1 exam passed
	Subject2    bool         `json:"subject2" db:"subject_2"`                   // Stage 2 exam passed
	Subject3    bool         `json:"subject3" db:"subject_3"`                   // Stage 3 exam passed
	Subject4    bool         `json:"subject4" db:"subject_4"`                   // Stage 4 exam passed
	IsAdmin     bool         `json:"isAdmin" db:"is_admin"`                     // Grants access to the admin console
}
