// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/advisorbridge/advisorbridge-backend/internal/config"
	"github.com/advisorbridge/advisorbridge-backend/internal/handlers"
	"github.com/advisorbridge/advisorbridge-backend/internal/middleware"
	"github.com/advisorbridge/advisorbridge-backend/internal/services"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Stores
	userStore := store.NewUserStore(db)
	opportunityStore := store.NewOpportunityStore(db)
	applicationStore := store.NewApplicationStore(db)
	connectionStore := store.NewConnectionStore(db)

	// Services
	storageService, _ := services.NewStorageService(cfg)
	reconcileService := services.NewReconcileService(opportunityStore, applicationStore)

	authService := services.NewAuthService(userStore, cfg)
	userService := services.NewUserService(userStore, storageService)
	opportunityService := services.NewOpportunityService(opportunityStore, applicationStore, userStore, reconcileService)
	applicationService := services.NewApplicationService(applicationStore, opportunityStore, userStore, reconcileService)
	connectionService := services.NewConnectionService(connectionStore, userStore)
	adminService := services.NewAdminService(userStore, opportunityStore, applicationStore, connectionStore)
	dashboardService := services.NewDashboardService(userStore, opportunityStore, applicationStore, connectionStore, adminService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, connectionService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:id/public", middleware.OptionalAuth(), userHandler.GetPublicProfile)

			protected := users.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.PUT("/profile", userHandler.UpdateProfile)
				protected.POST("/upload-avatar", middleware.UploadRateLimit(), userHandler.UploadAvatar)
			}
		}

		// Opportunity routes (all authenticated: discovery is member-only)
		opportunities := v1.Group("/opportunities")
		opportunities.Use(middleware.AuthRequired())
		{
			opportunities.POST("", opportunityHandler.Create)
			opportunities.GET("", opportunityHandler.Browse)
			opportunities.GET("/mine", opportunityHandler.ListOwn)
			opportunities.GET("/:id", opportunityHandler.GetByID)
			opportunities.POST("/:id/view", opportunityHandler.TrackView)
			opportunities.PUT("/:id", opportunityHandler.Update)
			opportunities.PATCH("/:id", opportunityHandler.Patch)
			opportunities.DELETE("/:id", opportunityHandler.Delete)
			opportunities.POST("/:id/apply", opportunityHandler.Apply)
			opportunities.GET("/:id/applications", opportunityHandler.ListApplications)
		}

		// Application routes
		applications := v1.Group("/applications")
		applications.Use(middleware.AuthRequired())
		{
			applications.GET("/mine", applicationHandler.ListMine)
			applications.PATCH("/:id", applicationHandler.UpdateStatus)
		}

		// Dashboard and connections
		dashboard := v1.Group("")
		dashboard.Use(middleware.AuthRequired())
		{
			dashboard.GET("/dashboard", dashboardHandler.GetDashboard)
			dashboard.GET("/connections", dashboardHandler.ListConnections)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
			admin.GET("/users", adminHandler.GetUsers)
			admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
			admin.GET("/opportunities", adminHandler.GetOpportunities)
			admin.GET("/applications", adminHandler.GetApplications)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
