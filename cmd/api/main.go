package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendwise/internal/config"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/store"
	"spendwise/internal/validator"

	_ "spendwise/internal/docs" // Import swagger docs
)

// @title           SpendWise API
// @version         1.0
// @description     SpendWise is a personal expense tracker: record spending events against a fixed category catalog and read monthly, weekly, and category-level summaries derived from them.

// @host      localhost:8080
// @BasePath  /api/v1

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

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators
	validator.Register()

	// The store is initialized empty with the default budget and lives for
	// the process lifetime; nothing is persisted across restarts.
	expenseStore := store.New(appConfig.DefaultBudget, time.Now)

	expenseHandler := handlers.NewExpenseHandler(expenseStore)
	budgetHandler := handlers.NewBudgetHandler(expenseStore)
	summaryHandler := handlers.NewSummaryHandler(expenseStore, time.Now)

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

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Category catalog
	v1.GET("/categories", expenseHandler.ListCategories)

	// Budget routes
	v1.GET("/budget", budgetHandler.GetBudget)
	v1.PUT("/budget", budgetHandler.SetBudget)

	// Derived views
	summary := v1.Group("/summary")
	summary.GET("", summaryHandler.GetMonthSummary)
	summary.GET("/week", summaryHandler.GetWeeklySeries)
	summary.GET("/categories", summaryHandler.GetCategoryTotals)
	summary.GET("/today", summaryHandler.GetTodaySummary)
	v1.GET("/insights", summaryHandler.GetInsights)

	log.Infof("Starting SpendWise server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
