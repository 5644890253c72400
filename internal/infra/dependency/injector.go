// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/config"
	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/application/usecase/auth"
	"github.com/nutrition-tracker/backend/internal/application/usecase/calorie"
	"github.com/nutrition-tracker/backend/internal/application/usecase/foodentry"
	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/application/usecase/mealplan"
	"github.com/nutrition-tracker/backend/internal/application/usecase/preference"
	"github.com/nutrition-tracker/backend/internal/application/usecase/user"
	"github.com/nutrition-tracker/backend/internal/application/usecase/weightentry"
	"github.com/nutrition-tracker/backend/internal/infra/server/router"
	"github.com/nutrition-tracker/backend/internal/integration/adapters"
	"github.com/nutrition-tracker/backend/internal/integration/email"
	"github.com/nutrition-tracker/backend/internal/integration/email/templates"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/nutrition-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// mirrorDB is the local SQLite database backing the goal fallback mirror.
func NewInjector(cfg *config.Config, db, mirrorDB *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	goalMirror := persistence.NewGoalMirror(mirrorDB)
	weightEntryRepo := persistence.NewWeightEntryRepository(db)
	foodEntryRepo := persistence.NewFoodEntryRepository(db)
	mealPlanRepo := persistence.NewMealPlanRepository(db)
	suggestionRepo := persistence.NewAIMealSuggestionRepository(db)
	calorieHistoryRepo := persistence.NewCalorieHistoryRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	preferenceStore := adapters.NewRedisPreferenceStore(redisClient)
	visionService := adapters.NewGeminiVisionService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create the email worker. The Resend client is swapped for a mock
	// sender when no API key is configured.
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
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
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, goalMirror, weightEntryRepo, preferenceStore)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, weightEntryRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create weight entry use cases
	addWeightEntryUseCase := weightentry.NewAddWeightEntryUseCase(goalRepo, weightEntryRepo)
	listWeightEntriesUseCase := weightentry.NewListWeightEntriesUseCase(goalRepo, weightEntryRepo)
	deleteWeightEntryUseCase := weightentry.NewDeleteWeightEntryUseCase(goalRepo, weightEntryRepo)

	// Create food entry use cases
	logFoodEntryUseCase := foodentry.NewLogFoodEntryUseCase(foodEntryRepo, visionService)
	logRefrigeratorScanUseCase := foodentry.NewLogRefrigeratorScanUseCase(foodEntryRepo, visionService)
	reanalyzeFoodEntryUseCase := foodentry.NewReanalyzeFoodEntryUseCase(foodEntryRepo, visionService)
	listFoodEntriesUseCase := foodentry.NewListFoodEntriesUseCase(foodEntryRepo)
	deleteFoodEntryUseCase := foodentry.NewDeleteFoodEntryUseCase(foodEntryRepo)

	// Create calorie use cases
	syncAutoGoalUseCase := calorie.NewSyncAutoGoalUseCase(foodEntryRepo, goalRepo, calorieHistoryRepo, preferenceStore)
	dailySummaryUseCase := calorie.NewGetDailySummaryUseCase(foodEntryRepo, goalRepo, syncAutoGoalUseCase)
	weeklySummaryUseCase := calorie.NewGetWeeklySummaryUseCase(foodEntryRepo, calorieHistoryRepo, syncAutoGoalUseCase)

	// Create meal plan use cases
	createMealPlanUseCase := mealplan.NewCreateMealPlanUseCase(mealPlanRepo)
	listMealPlansUseCase := mealplan.NewListMealPlansUseCase(mealPlanRepo)
	updateMealPlanUseCase := mealplan.NewUpdateMealPlanUseCase(mealPlanRepo)
	deleteMealPlanUseCase := mealplan.NewDeleteMealPlanUseCase(mealPlanRepo)
	generateSuggestionUseCase := mealplan.NewGenerateSuggestionUseCase(suggestionRepo, foodEntryRepo, visionService)

	// Create preference use cases
	getDisplayUnitUseCase := preference.NewGetDisplayUnitUseCase(preferenceStore)
	setDisplayUnitUseCase := preference.NewSetDisplayUnitUseCase(preferenceStore)

	// Create admin use cases
	listPendingUsersUseCase := user.NewListPendingUsersUseCase(userRepo)
	approveUserUseCase := user.NewApproveUserUseCase(userRepo, emailService)

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

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	weightEntryController := controller.NewWeightEntryController(
		addWeightEntryUseCase,
		listWeightEntriesUseCase,
		deleteWeightEntryUseCase,
	)

	foodEntryController := controller.NewFoodEntryController(
		logFoodEntryUseCase,
		logRefrigeratorScanUseCase,
		reanalyzeFoodEntryUseCase,
		listFoodEntriesUseCase,
		deleteFoodEntryUseCase,
	)

	calorieController := controller.NewCalorieController(
		dailySummaryUseCase,
		weeklySummaryUseCase,
	)

	mealPlanController := controller.NewMealPlanController(
		createMealPlanUseCase,
		listMealPlansUseCase,
		updateMealPlanUseCase,
		deleteMealPlanUseCase,
		generateSuggestionUseCase,
	)

	preferenceController := controller.NewPreferenceController(
		getDisplayUnitUseCase,
		setDisplayUnitUseCase,
	)

	adminController := controller.NewAdminController(
		listPendingUsersUseCase,
		approveUserUseCase,
		cfg.Email.AppBaseURL,
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
	approvalMiddleware := middleware.NewApprovalMiddleware(userRepo)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		goalController,
		weightEntryController,
		foodEntryController,
		calorieController,
		mealPlanController,
		preferenceController,
		adminController,
		loginRateLimiter,
		authMiddleware,
		approvalMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
