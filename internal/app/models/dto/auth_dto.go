package dto

// LoginRequest carries the admin console credentials.
// The login form posts these as form fields; the API accepts JSON too.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResponse confirms an established session
type LoginResponse struct {
	UserID   int64  `json:"userId" example:"1"`
	Username string `json:"username" example:"root"`
	IsAdmin  bool   `json:"isAdmin" example:"true"`
}
