// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pennyflow/backend/config"
	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/application/usecase/budget"
	"github.com/pennyflow/backend/internal/application/usecase/category"
	"github.com/pennyflow/backend/internal/application/usecase/dashboard"
	"github.com/pennyflow/backend/internal/application/usecase/suggestion"
	"github.com/pennyflow/backend/internal/application/usecase/transaction"
	"github.com/pennyflow/backend/internal/application/usecase/user"
	"github.com/pennyflow/backend/internal/infra/server/router"
	"github.com/pennyflow/backend/internal/integration/adapters"
	"github.com/pennyflow/backend/internal/integration/email"
	"github.com/pennyflow/backend/internal/integration/email/templates"
	"github.com/pennyflow/backend/internal/integration/entrypoint/controller"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
	"github.com/pennyflow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client and the email worker renderer are optional: a nil redis
// client disables summary caching, and the worker is only built when a
// renderer is supplied.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db, cfg.Categories.Sentinel)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters and services
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	emailService := email.NewService(emailQueueRepo, "https://app.pennyflow.dev")
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = adapters.NewRedisSummaryCache(redisClient)
	}

	// User use cases
	loginUseCase := user.NewLoginUserUseCase(userRepo)
	deactivateUseCase := user.NewDeactivateUserUseCase(userRepo, emailService)
	purgeUseCase := user.NewPurgeAccountUseCase(
		userRepo,
		categoryRepo,
		transactionRepo,
		budgetRepo,
		tokenService,
		emailService,
	)

	// Category use cases
	seedDefaultsUseCase := category.NewSeedDefaultsUseCase(
		categoryRepo,
		cfg.Categories.DefaultExpense,
		cfg.Categories.DefaultIncome,
	)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	upsertCategoryUseCase := category.NewUpsertCategoryUseCase(categoryRepo)
	categoryExistsUseCase := category.NewCategoryExistsUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategorySafeUseCase(categoryRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Budget use cases
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)

	// Dashboard and suggestion use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, summaryCache, cfg.Redis.SummaryTTL)
	suggestUseCase := suggestion.NewSuggestCategoryUseCase(categoryRepo, geminiService)

	// Controllers and middleware
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(loginUseCase, seedDefaultsUseCase, tokenService)
	userController := controller.NewUserController(deactivateUseCase, purgeUseCase)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		upsertCategoryUseCase,
		categoryExistsUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)
	budgetController := controller.NewBudgetController(upsertBudgetUseCase, listBudgetsUseCase)
	dashboardController := controller.NewDashboardController(summaryUseCase)
	suggestionController := controller.NewSuggestionController(suggestUseCase)

	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	appRouter := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		budgetController,
		dashboardController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
	)

	// Email worker
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, err
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      appRouter,
		EmailWorker: emailWorker,
	}, nil
}
