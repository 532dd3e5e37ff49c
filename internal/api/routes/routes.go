package routes

import (
	"log"

	"team-portal-backend/internal/api/handlers"
	"team-portal-backend/internal/api/middleware"
	"team-portal-backend/internal/auth"
	"team-portal-backend/internal/config"
	"team-portal-backend/internal/database/models"
	"team-portal-backend/internal/repository"
	"team-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize shared validator
	validator := validator.New()
	if err := service.RegisterCustomValidations(validator); err != nil {
		log.Printf("Warning: failed to register custom validations: %v", err)
	}

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: failed to load auth config: %v", err)
		authConfig = auth.DefaultConfig()
	}
	if cfg.JWTSecret != "" {
		authConfig.JWTSecret = cfg.JWTSecret
	}
	authService := auth.NewAuthService(authConfig, userRepo, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Team routes - all require authentication
	teams := router.Group("/api/teams")
	teams.Use(authMiddleware.RequireAuth())
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.DELETE("/bulk", teamHandler.BulkDeleteTeams)
		teams.PUT("/reorder", teamHandler.ReorderTeams)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.PUT("/:id", teamHandler.UpdateTeam)
		teams.DELETE("/:id", teamHandler.DeleteTeam)
		teams.PUT("/:id/approve",
			authMiddleware.RequireRole(models.RoleManager, models.RoleDirector),
			teamHandler.ApproveTeam)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success":    false,
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
