package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/session"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker: transactions, filters, and spending analytics over a normalized snapshot.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize gateways and services
	db := dbManager.DB()
	transactionGateway := services.NewTransactionGateway(db)
	profileGateway := services.NewProfileGateway(db)
	dashboardService := services.NewDashboardService(transactionGateway, appConfig.SavingsGoal)

	// One session context per signed-in user; log sign-in/out transitions.
	sessions := session.NewRegistry()
	sessions.SubscribeAll(func(user *models.User) {
		if user == nil {
			logger.Named("session").Infow("session cleared")
			return
		}
		logger.Named("session").Infow("session updated", "user_id", user.ID, "email", user.Email)
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(profileGateway, sessions)
	profileHandler := handlers.NewProfileHandler(profileGateway, sessions)
	transactionHandler := handlers.NewTransactionHandler(transactionGateway)
	analyticsHandler := handlers.NewAnalyticsHandler(dashboardService, transactionGateway)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)

	// User profile
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.SaveProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Analytics routes
	analytics := protected.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.Summary)
	analytics.GET("/grouped", analyticsHandler.Grouped)
	analytics.GET("/categories", analyticsHandler.Categories)
	analytics.GET("/insight", analyticsHandler.Insight)

	log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
