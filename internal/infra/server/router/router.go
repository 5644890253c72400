// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	goalController        *controller.GoalController
	weightEntryController *controller.WeightEntryController
	foodEntryController   *controller.FoodEntryController
	calorieController     *controller.CalorieController
	mealPlanController    *controller.MealPlanController
	preferenceController  *controller.PreferenceController
	adminController       *controller.AdminController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	approvalMiddleware    *middleware.ApprovalMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	goalController *controller.GoalController,
	weightEntryController *controller.WeightEntryController,
	foodEntryController *controller.FoodEntryController,
	calorieController *controller.CalorieController,
	mealPlanController *controller.MealPlanController,
	preferenceController *controller.PreferenceController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	approvalMiddleware *middleware.ApprovalMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		goalController:        goalController,
		weightEntryController: weightEntryController,
		foodEntryController:   foodEntryController,
		calorieController:     calorieController,
		mealPlanController:    mealPlanController,
		preferenceController:  preferenceController,
		adminController:       adminController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		approvalMiddleware:    approvalMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Tracked resources sit
// behind both authentication and the account approval gate.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Goal routes (require authentication and approval)
		if r.goalController != nil && r.authMiddleware != nil && r.approvalMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)

				// Weight entry routes (nested under goals)
				if r.weightEntryController != nil {
					goals.GET("/:id/weight-entries", r.weightEntryController.List)
					goals.POST("/:id/weight-entries", r.weightEntryController.Add)
				}
			}

			// Weight entry deletion (separate path)
			if r.weightEntryController != nil {
				weightEntries := v1.Group("/weight-entries")
				weightEntries.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
				{
					weightEntries.DELETE("/:id", r.weightEntryController.Delete)
				}
			}
		}

		// Food entry routes (require authentication and approval)
		if r.foodEntryController != nil && r.authMiddleware != nil && r.approvalMiddleware != nil {
			foodEntries := v1.Group("/food-entries")
			foodEntries.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				foodEntries.GET("", r.foodEntryController.List)
				foodEntries.POST("/analyze", r.foodEntryController.Analyze)
				foodEntries.POST("/refrigerator", r.foodEntryController.AnalyzeRefrigerator)
				foodEntries.POST("/:id/reanalyze", r.foodEntryController.Reanalyze)
				foodEntries.DELETE("/:id", r.foodEntryController.Delete)
			}
		}

		// Calorie summary routes (require authentication and approval)
		if r.calorieController != nil && r.authMiddleware != nil && r.approvalMiddleware != nil {
			calories := v1.Group("/calories")
			calories.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				calories.GET("/daily", r.calorieController.DailySummary)
				calories.GET("/weekly", r.calorieController.WeeklySummary)
			}
		}

		// Meal plan routes (require authentication and approval)
		if r.mealPlanController != nil && r.authMiddleware != nil && r.approvalMiddleware != nil {
			mealPlans := v1.Group("/meal-plans")
			mealPlans.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				mealPlans.GET("", r.mealPlanController.List)
				mealPlans.POST("", r.mealPlanController.Create)
				mealPlans.POST("/suggest", r.mealPlanController.Suggest)
				mealPlans.PUT("/:id", r.mealPlanController.Update)
				mealPlans.DELETE("/:id", r.mealPlanController.Delete)
			}
		}

		// Preference routes (require authentication)
		if r.preferenceController != nil && r.authMiddleware != nil {
			preferences := v1.Group("/preferences")
			preferences.Use(r.authMiddleware.Authenticate())
			{
				preferences.GET("/display-unit", r.preferenceController.GetDisplayUnit)
				preferences.PUT("/display-unit", r.preferenceController.SetDisplayUnit)
			}
		}

		// Admin routes (require authentication; role check happens in the use cases)
		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate())
			{
				admin.GET("/users/pending", r.adminController.ListPendingUsers)
				admin.POST("/users/:id/approve", r.adminController.ApproveUser)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
