package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/services"
	"github.com/lansen/driveadmin/internal/middleware"
)

// CarController handles vehicle record operations
type CarController struct {
	carService services.CarService
}

// NewCarController creates a new CarController
func NewCarController(carService services.CarService) *CarController {
	return &CarController{carService: carService}
}

// CreateCar handles registering a vehicle
func (c *CarController) CreateCar(ctx *gin.Context) {
	var req dto.CreateCarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	id, err := c.carService.CreateCar(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.Ok(dto.IDResponse{ID: id}))
}

// GetCar handles retrieving one vehicle by id. A missing vehicle is a
// success with empty data, not an error.
func (c *CarController) GetCar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	car, err := c.carService.GetCarByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if car == nil {
		respond(ctx, dto.Ok(gin.H{}))
		return
	}

	respond(ctx, dto.Ok(dto.NewCarResponse(car)))
}

// UpdateCar handles replacing every mutable field of one vehicle
func (c *CarController) UpdateCar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalid(ctx, err)
		return
	}

	if err := c.carService.UpdateCarByID(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.UpdateOk())
}

// DeleteCar handles deleting one vehicle. Bookings referencing it go with it.
func (c *CarController) DeleteCar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.carService.DeleteCarByID(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, dto.DeleteOk())
}
