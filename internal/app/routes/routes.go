package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/controllers"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	carController *controllers.CarController,
	subjectController *controllers.SubjectController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// The bare root just forwards to the console sign-in page
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, middleware.LoginPath)
	})

	// --- Admin console pages ---
	admin := router.Group("/admin")
	{
		admin.GET("/login", authController.ShowLogin)
		admin.POST("/login", authController.Login)
		admin.GET("/logout", authController.Logout)
	}

	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Ok(gin.H{"status": "ok"}))
	})

	// --- Guarded Routes Group ---
	// Every data operation requires a valid admin session
	guarded := v1.Group("")
	guarded.Use(authMiddleware.AdminRequired())
	{
		// Student routes
		users := guarded.Group("/users")
		{
			users.POST("", userController.CreateUser)
			users.POST("/bulk", userController.CreateUsersBulk)
			users.POST("/check-password", userController.CheckPassword)
			users.GET("", userController.ListUsers)
			users.GET("/:id", userController.GetUser)
			users.GET("/by-username/:username", userController.GetUserByUsername)
			users.PUT("/:id", userController.UpdateUser)
			users.PUT("/by-username/:username", userController.UpdateUserByUsername)
			users.DELETE("", userController.DeleteUsers)
			users.DELETE("/:id", userController.DeleteUser)
			users.DELETE("/by-username/:username", userController.DeleteUserByUsername)
		}

		// Vehicle routes
		cars := guarded.Group("/cars")
		{
			cars.POST("", carController.CreateCar)
			cars.GET("/:id", carController.GetCar)
			cars.PUT("/:id", carController.UpdateCar)
			cars.DELETE("/:id", carController.DeleteCar)
		}

		// Exam booking routes
		subjects := guarded.Group("/subjects")
		{
			subjects.POST("", subjectController.CreateSubject)
			subjects.GET("/:id", subjectController.GetSubject)
			subjects.PUT("/:id", subjectController.UpdateSubject)
			subjects.DELETE("", subjectController.DeleteSubjectByPair)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
		}
	}

	// Unknown routes get the 404 page or envelope
	router.NoRoute(middleware.NotFoundHandler())
}
