package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/services"
	"github.com/lansen/driveadmin/internal/middleware"
)

// SubjectController handles exam booking operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject handles booking an exam stage for a student on a car
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	id, err := c.subjectService.CreateSubject(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.Ok(dto.IDResponse{ID: id}))
}

// GetSubject handles retrieving one booking by id. A missing booking is a
// success with empty data, not an error.
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if subject == nil {
		respond(ctx, dto.Ok(gin.H{}))
		return
	}

	respond(ctx, dto.Ok(dto.NewSubjectResponse(subject)))
}

// UpdateSubject handles replacing every mutable field of one booking
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	if err := c.subjectService.UpdateSubjectByID(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.UpdateOk())
}

// DeleteSubject handles deleting one booking by id
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubjectByID(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.DeleteOk())
}

// DeleteSubjectByPair handles deleting the booking identified by the
// user_id and car_id query parameters
func (c *SubjectController) DeleteSubjectByPair(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		respond(ctx, dto.InvalidParameter("invalid user_id"))
		return
	}
	carID, err := strconv.ParseInt(ctx.Query("car_id"), 10, 64)
	if err != nil || carID <= 0 {
		respond(ctx, dto.InvalidParameter("invalid car_id"))
		return
	}

	if err := c.subjectService.DeleteSubjectByUserAndCar(ctx.Request.Context(), userID, carID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.DeleteOk())
}
