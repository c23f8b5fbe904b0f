// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finansync/backend/config"
	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/application/usecase/analytics"
	"github.com/finansync/backend/internal/application/usecase/auth"
	"github.com/finansync/backend/internal/application/usecase/budget"
	"github.com/finansync/backend/internal/application/usecase/dashboard"
	"github.com/finansync/backend/internal/application/usecase/expense"
	"github.com/finansync/backend/internal/application/usecase/insight"
	"github.com/finansync/backend/internal/application/usecase/report"
	"github.com/finansync/backend/internal/infra/server/router"
	"github.com/finansync/backend/internal/integration/adapters"
	rediscache "github.com/finansync/backend/internal/integration/cache"
	"github.com/finansync/backend/internal/integration/email"
	"github.com/finansync/backend/internal/integration/email/templates"
	"github.com/finansync/backend/internal/integration/entrypoint/controller"
	"github.com/finansync/backend/internal/integration/entrypoint/middleware"
	"github.com/finansync/backend/internal/integration/pdf"
	"github.com/finansync/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	now := time.Now

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	reportCache := rediscache.NewReportCache(redisClient)
	reportRenderer := pdf.NewReportRenderer()
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create email worker
	emailRenderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, emailRenderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, expenseRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, reportCache, now)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, expenseRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, expenseRepo, reportCache, now)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, expenseRepo, reportCache, now)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, budgetRepo, reportCache, now)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, budgetRepo, reportCache, now)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, reportCache, now)

	// Create report use cases
	monthlyReportUseCase := report.NewGenerateMonthlyReportUseCase(budgetRepo, expenseRepo, reportCache, now)
	yearlyReportUseCase := report.NewGenerateYearlyReportUseCase(budgetRepo, expenseRepo, reportCache, now)
	exportReportUseCase := report.NewExportReportPDFUseCase(monthlyReportUseCase, yearlyReportUseCase, reportRenderer, now)

	// Create dashboard and analytics use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(budgetRepo, expenseRepo, reportCache, now)
	getAnalyticsUseCase := analytics.NewGetAnalyticsUseCase(budgetRepo, expenseRepo, now)

	// Create AI insight use cases
	generateInsightsUseCase := insight.NewGenerateInsightsUseCase(budgetRepo, expenseRepo, geminiService)
	answerQuestionUseCase := insight.NewAnswerQuestionUseCase(budgetRepo, expenseRepo, geminiService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	reportController := controller.NewReportController(
		monthlyReportUseCase,
		yearlyReportUseCase,
		exportReportUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	analyticsController := controller.NewAnalyticsController(getAnalyticsUseCase)

	insightController := controller.NewInsightController(
		generateInsightsUseCase,
		answerQuestionUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		budgetController,
		expenseController,
		reportController,
		dashboardController,
		analyticsController,
		insightController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
