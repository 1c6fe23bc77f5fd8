package dto

import (
	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/pkg/dates"
)

// CreateUserRequest carries the fields for a new student record.
// Birthday is a YYYY-MM-DD string; subject fields default when omitted.
type CreateUserRequest struct {
	Gender      int     `json:"gender" binding:"required,oneof=1 2"`
	Username    string  `json:"username" binding:"required,min=1,max=64"`
	Password    string  `json:"password" binding:"required,min=1,max=64"`
	Contact     string  `json:"contact" binding:"required,max=64"`
	Birthday    *string `json:"birthday,omitempty" binding:"omitempty,dateformat"`
	SubjectType *int    `json:"subjectType,omitempty" binding:"omitempty,oneof=0 1 2"`
	Subject1    *bool   `json:"subject1,omitempty"`
	Subject2    *bool   `json:"subject2,omitempty"`
	Subject3    *bool   `json:"subject3,omitempty"`
	Subject4    *bool   `json:"subject4,omitempty"`
}

// BulkCreateUsersRequest carries a batch of student records
type BulkCreateUsersRequest struct {
	Users []CreateUserRequest `json:"users" binding:"required,min=1,dive"`
}

// UpdateUserRequest is the partial-update form for a student record.
// Only non-nil fields are applied; a present password is re-hashed and a
// present birthday re-parsed.
type UpdateUserRequest struct {
	Gender      *int    `json:"gender,omitempty" binding:"omitempty,oneof=1 2"`
	Username    *string `json:"username,omitempty" binding:"omitempty,min=1,max=64"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=1,max=64"`
	Contact     *string `json:"contact,omitempty" binding:"omitempty,max=64"`
	Birthday    *string `json:"birthday,omitempty" binding:"omitempty,dateformat"`
	SubjectType *int    `json:"subjectType,omitempty" binding:"omitempty,oneof=0 1 2"`
	Subject1    *bool   `json:"subject1,omitempty"`
	Subject2    *bool   `json:"subject2,omitempty"`
	Subject3    *bool   `json:"subject3,omitempty"`
	Subject4    *bool   `json:"subject4,omitempty"`
}

// Empty reports whether the update carries no fields at all
func (r UpdateUserRequest) Empty() bool {
	return r.Gender == nil && r.Username == nil && r.Password == nil &&
		r.Contact == nil && r.Birthday == nil && r.SubjectType == nil &&
		r.Subject1 == nil && r.Subject2 == nil && r.Subject3 == nil && r.Subject4 == nil
}

// UserFilter selects students by attribute values. UserID takes priority over
// all other fields and Username over the remainder; otherwise every non-nil
// field is ANDed together.
type UserFilter struct {
	UserID      *int64  `form:"user_id" json:"userId,omitempty"`
	Username    *string `form:"username" json:"username,omitempty"`
	Gender      *int    `form:"gender" json:"gender,omitempty"`
	Birthday    *string `form:"birthday" json:"birthday,omitempty"`
	Contact     *string `form:"contact" json:"contact,omitempty"`
	SubjectType *int    `form:"subject_type" json:"subjectType,omitempty"`
	Subject1    *bool   `form:"subject_1" json:"subject1,omitempty"`
	Subject2    *bool   `form:"subject_2" json:"subject2,omitempty"`
	Subject3    *bool   `form:"subject_3" json:"subject3,omitempty"`
	Subject4    *bool   `form:"subject_4" json:"subject4,omitempty"`
}

// CheckPasswordRequest verifies a plaintext password for a student
type CheckPasswordRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CheckPasswordResponse carries the verification result
type CheckPasswordResponse struct {
	Valid bool `json:"valid"`
}

// IDResponse carries a newly assigned identity
type IDResponse struct {
	ID int64 `json:"id" example:"1"`
}

// IDsResponse carries identities assigned by a bulk insert, in input order
type IDsResponse struct {
	IDs []int64 `json:"ids"`
}

// UserResponse is the serialized form of a student record
type UserResponse struct {
	ID          int64   `json:"userId" example:"1"`
	Username    string  `json:"username" example:"li.na"`
	Gender      int     `json:"gender" example:"1"`
	Contact     string  `json:"contact" example:"13800000000"`
	Birthday    *string `json:"birthday,omitempty" example:"2001-05-10"`
	SubjectType int     `json:"subjectType" example:"1"`
	Subject1    bool    `json:"subject1"`
	Subject2    bool    `json:"subject2"`
	Subject3    bool    `json:"subject3"`
	Subject4    bool    `json:"subject4"`
}

// NewUserResponse maps a student record to its serialized form.
// The password hash never leaves the service layer.
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Gender:      int(u.Gender),
		Contact:     u.Contact,
		Birthday:    dates.FormatDate(u.Birthday),
		SubjectType: int(u.SubjectType),
		Subject1:    u.Subject1,
		Subject2:    u.Subject2,
		Subject3:    u.Subject3,
		Subject4:    u.Subject4,
	}
}

// NewUserListResponse maps a list of student records
func NewUserListResponse(users []*models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
