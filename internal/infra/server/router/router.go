// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/integration/entrypoint/controller"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
	suggestionController  *controller.SuggestionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	suggestionController *controller.SuggestionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
		suggestionController:  suggestionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())
		{
			users := protected.Group("/users")
			{
				users.POST("/me/deactivate", r.userController.Deactivate)
				users.DELETE("/me", r.userController.Purge)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Upsert)
				categories.GET("/exists", r.categoryController.Exists)
				categories.DELETE("", r.categoryController.Delete)
				if r.suggestionController != nil {
					categories.POST("/suggest", r.suggestionController.Suggest)
				}
			}

			transactions := protected.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}

			budgets := protected.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.PUT("", r.budgetController.Upsert)
			}

			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
			}
		}
	}
}
