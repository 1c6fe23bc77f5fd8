package models

// Gender encodes a student's gender as stored in the users table
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

// Valid reports whether the gender value is one of the known codes
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// LicenseClass encodes the license class a student pursues or a car is rated for
type LicenseClass int

const (
	LicenseClassNone LicenseClass = 0 // not yet assigned
	LicenseClassC1   LicenseClass = 1
	LicenseClassC2   LicenseClass = 2
)

// Valid reports whether the license class value is one of the known codes
func (c LicenseClass) Valid() bool {
	return c >= LicenseClassNone && c <= LicenseClassC2
}

// Exam stage bounds. Every enrollment progresses through four sequential stages.
const (
	MinStageNumber = 1
	MaxStageNumber = 4
)
