// Package router wires services, handlers and middleware into the HTTP API.
package router

import (
	"net/http"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "fintrack/internal/docs" // swagger docs
)

// New builds the gin engine serving the /api routes.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Initialize services
	userService := services.NewUserService(db, cfg.BcryptCost)
	auditService := services.NewAuditService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	netWorthService := services.NewNetWorthService(db)
	recurringService := services.NewRecurringService(db)
	snapshotService := services.NewNetWorthSnapshotService(db, netWorthService)

	tokens := middleware.NewTokenManager(cfg.JWTSecret, cfg.JWTExpirationDur)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService, tokens)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	investmentHandler := handlers.NewInvestmentHandler(netWorthService, auditService)
	analyticsHandler := handlers.NewAnalyticsHandler(transactionService)
	recurringHandler := handlers.NewRecurringHandler(recurringService, auditService)
	historyHandler := handlers.NewNetWorthHistoryHandler(snapshotService, auditService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORSOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"status": "ok"}})
	})

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)

	public := api.Group("/")
	public.Use(middleware.OptionalAuth(tokens))
	public.GET("/categories", categoryHandler.GetCategories)
	public.GET("/categories/:id", categoryHandler.GetCategory)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))

	profile := protected.Group("/auth")
	profile.GET("/profile", authHandler.GetProfile)
	profile.PUT("/profile", authHandler.UpdateProfile)
	profile.DELETE("/profile", authHandler.DeleteProfile)
	profile.PUT("/password", authHandler.ChangePassword)
	profile.GET("/settings", authHandler.GetSettings)
	profile.PUT("/settings", authHandler.UpdateSettings)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.POST("/:id/copy", categoryHandler.CopyCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.SetBudget)
	budgets.GET("/alerts", budgetHandler.GetBudgetAlerts)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Net worth and holdings
	protected.GET("/networth", investmentHandler.GetNetWorth)
	protected.GET("/networth/snapshots", historyHandler.GetSnapshots)
	protected.POST("/networth/snapshots", historyHandler.RecordSnapshot)
	investments := protected.Group("/investments")
	investments.GET("", investmentHandler.GetInvestments)
	investments.POST("", investmentHandler.CreateInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	// Analytics
	analytics := protected.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.GetSummary)
	analytics.GET("/category-breakdown", analyticsHandler.GetCategoryBreakdown)
	analytics.GET("/trend", analyticsHandler.GetTrend)

	// Recurring templates
	recurring := protected.Group("/recurring")
	recurring.GET("", recurringHandler.GetRecurring)
	recurring.POST("", recurringHandler.CreateRecurring)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurring)

	return router
}
