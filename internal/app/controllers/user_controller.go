package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/services"
	"github.com/lansen/driveadmin/internal/middleware"
)

// UserController handles student record operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// parseIDParam reads a positive integer path parameter, answering with an
// invalid-parameter envelope when it does not parse
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		env := dto.InvalidParameter("invalid " + name)
		ctx.JSON(env.Status, env)
		return 0, false
	}
	return id, true
}

func respondInvalid(ctx *gin.Context, err error) {
	env := dto.InvalidParameter(middleware.FormatBindingError(err))
	ctx.JSON(env.Status, env)
}

func respond(ctx *gin.Context, env dto.Envelope) {
	ctx.JSON(env.Status, env)
}

// CreateUser handles registering a single student
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	id, err := c.userService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.Ok(dto.IDResponse{ID: id}))
}

// CreateUsersBulk handles registering a batch of students in one transaction.
// The assigned ids come back in input order.
func (c *UserController) CreateUsersBulk(ctx *gin.Context) {
	var req dto.BulkCreateUsersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	ids, err := c.userService.CreateUsersBulk(ctx.Request.Context(), req.Users)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.Ok(dto.IDsResponse{IDs: ids}))
}

// GetUser handles retrieving one student by id. A missing student is a
// success with empty data, not an error.
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		respond(ctx, dto.Ok(gin.H{}))
		return
	}

	respond(ctx, dto.Ok(dto.NewUserResponse(user)))
}

// GetUserByUsername handles retrieving one student by username
func (c *UserController) GetUserByUsername(ctx *gin.Context) {
	username := ctx.Param("username")

	user, err := c.userService.GetUserByUsername(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		respond(ctx, dto.Ok(gin.H{}))
		return
	}

	respond(ctx, dto.Ok(dto.NewUserResponse(user)))
}

// ListUsers handles retrieving students by an attribute filter.
// No filter fields means every student.
func (c *UserController) ListUsers(ctx *gin.Context) {
	var filter dto.UserFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondInvalid(ctx, err)
		return
	}

	users, err := c.userService.GetUsersByFilter(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.Ok(dto.NewUserListResponse(users)))
}

// UpdateUser handles a partial update of one student by id
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	if err := c.userService.UpdateUserByID(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.UpdateOk())
}

// UpdateUserByUsername handles a partial update of one student by username
func (c *UserController) UpdateUserByUsername(ctx *gin.Context) {
	username := ctx.Param("username")

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	if err := c.userService.UpdateUserByUsername(ctx.Request.Context(), username, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.UpdateOk())
}

// DeleteUser handles deleting one student by id
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUserByID(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.DeleteOk())
}

// DeleteUserByUsername handles deleting one student by username
func (c *UserController) DeleteUserByUsername(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := c.userService.DeleteUserByUsername(ctx.Request.Context(), username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.DeleteOk())
}

// DeleteUsers handles deleting every student matching the filter.
// An empty filter is rejected.
func (c *UserController) DeleteUsers(ctx *gin.Context) {
	var filter dto.UserFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondInvalid(ctx, err)
		return
	}

	deleted, err := c.userService.DeleteUsersByFilter(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	env := dto.DeleteOk()
	env.Data = gin.H{"deleted": deleted}
	respond(ctx, env)
}

// CheckPassword handles verifying a plaintext password for a student
func (c *UserController) CheckPassword(ctx *gin.Context) {
	var req dto.CheckPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	valid, err := c.userService.CheckPassword(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.Ok(dto.CheckPasswordResponse{Valid: valid}))
}
