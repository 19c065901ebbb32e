package routes

import (
	"ClinicaViva/cache"
	"ClinicaViva/config"
	"ClinicaViva/controllers"
	"ClinicaViva/handlers"
	"ClinicaViva/middlewares"
	"ClinicaViva/repositories"
	"ClinicaViva/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.clinicaviva.app", "https://clinicaviva-dev.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	appointmentTypeRepo := repositories.NewAppointmentTypeRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	reportRepo := repositories.NewReportRepository()
	userRepo := repositories.NewUserRepository(db, cache)

	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	appointmentTypeHandler := handlers.NewAppointmentTypeHandler(services.NewAppointmentTypeService(appointmentTypeRepo, appointmentRepo))
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo))
	reportHandler := handlers.NewReportHandler(services.NewReportService(reportRepo))
	authHandler := handlers.NewAuthHandler(services.NewUserService(userRepo))

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		patientHandler,
		appointmentTypeHandler,
		appointmentHandler,
		reportHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
