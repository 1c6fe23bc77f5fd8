package models

// Subject defines an exam-stage booking linking a User to a Car,
// based on the 'subjects' table. The (user_id, car_id) pair is unique:
// a student cannot book the same car twice.
type Subject struct {
	ID            int64        `json:"id" db:"subject_id" example:"1"`
	UserID        int64        `json:"userId" db:"user_id" example:"1"`  // References users.user_id, cascade on delete/update
	CarID         int64        `json:"carId" db:"car_id" example:"1"`    // References cars.car_id, cascade on delete/update
	SubjectType   LicenseClass `json:"subjectType" db:"subject_type" example:"1"`
	SubjectNumber int          `json:"subjectNumber" db:"subject_number" example:"2"` // Which of the four stages (1-4)
}
