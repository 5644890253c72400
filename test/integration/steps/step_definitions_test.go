package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

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
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/nutrition-tracker/backend/internal/integration/persistence"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
	"github.com/nutrition-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
const testAppBaseURL = "http://localhost:3000"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *redis.Client
	serverPort    int
	accessToken   string
	refreshToken  string
	resetToken    string
	expiredToken  string
	currentUserID uuid.UUID
	pendingUserID uuid.UUID
	goalID        uuid.UUID
	weightEntryID uuid.UUID
	foodEntryID   uuid.UUID
	mealPlanID    uuid.UUID
	lastCreatedID uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testRedis *redis.Client
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		redis:      mock.NewRedis(),
		db: mock.NewDb("nutrition_tracker", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"goals":                 &model.GoalModel{},
			"weight_entries":        &model.WeightEntryModel{},
			"food_entries":          &model.FoodEntryModel{},
			"meal_plans":            &model.MealPlanModel{},
			"ai_meal_suggestions":   &model.AIMealSuggestionModel{},
			"calorie_history":       &model.CalorieHistoryModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^an unapproved user exists with email "([^"]*)"$`, test.anUnapprovedUserExistsWithEmail)
	ctx.Given(`^an admin user exists with email "([^"]*)"$`, test.anAdminUserExistsWithEmail)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Goal setup steps
	ctx.Given(`^a "([^"]*)" goal exists from "([^"]*)" to "([^"]*)"$`, test.aGoalExistsFromTo)
	ctx.Given(`^a weight entry of "([^"]*)" kg exists for the goal$`, test.aWeightEntryExistsForTheGoal)

	// Food entry and meal plan setup steps
	ctx.Given(`^a food entry "([^"]*)" with (\d+) calories exists$`, test.aFoodEntryExists)
	ctx.Given(`^a meal plan "([^"]*)" exists for "([^"]*)"$`, test.aMealPlanExistsFor)

	// Preference setup steps
	ctx.Given(`^the display unit preference is "([^"]*)"$`, test.theDisplayUnitPreferenceIs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.pendingUserID = uuid.Nil
	t.goalID = uuid.Nil
	t.weightEntryID = uuid.Nil
	t.foodEntryID = uuid.Nil
	t.mealPlanID = uuid.Nil
	t.lastCreatedID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories. The goal mirror shares the test
			// connection, which makes its upserts idempotent no-ops here.
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			goalMirror := persistence.NewGoalMirror(testDB.DbConn)
			weightEntryRepo := persistence.NewWeightEntryRepository(testDB.DbConn)
			foodEntryRepo := persistence.NewFoodEntryRepository(testDB.DbConn)
			mealPlanRepo := persistence.NewMealPlanRepository(testDB.DbConn)
			suggestionRepo := persistence.NewAIMealSuggestionRepository(testDB.DbConn)
			calorieHistoryRepo := persistence.NewCalorieHistoryRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services. The vision service runs without an
			// API key so analysis endpoints answer with the not-configured
			// error. Queued emails stay in the email_queue table because no
			// worker is started.
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			preferenceStore := adapters.NewRedisPreferenceStore(testRedis)
			visionService := adapters.NewGeminiVisionService("", "gemini-2.0-flash")
			emailService := email.NewService(emailQueueRepo, testAppBaseURL)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, testAppBaseURL)
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
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			userController := controller.NewUserController(deleteAccountUseCase)

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
				testAppBaseURL,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)
			approvalMiddleware := middleware.NewApprovalMiddleware(userRepo)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User", "regular", true)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User", "regular", true)
}

func (t *testContext) anUnapprovedUserExistsWithEmail(email string) error {
	if err := t.createUser(email, "DefaultPass123!", "Pending User", "regular", false); err != nil {
		return err
	}
	t.pendingUserID = t.currentUserID
	return nil
}

func (t *testContext) anAdminUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Admin User", "admin", true)
}

func (t *testContext) createUser(email, password, name, role string, approved bool) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:              userID,
		Email:           email,
		Name:            name,
		PasswordHash:    hashPassword(password),
		Role:            role,
		IsApproved:      approved,
		TermsAcceptedAt: time.Now(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// iAmLoggedInAs switches the current logged in user to the specified email.
// The user must have been created by an earlier step.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "nutrition-tracker",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "nutrition-tracker",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Replace any refresh token this user already holds
	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", userID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

// aGoalExistsFromTo creates a goal of the given type for the current user.
// Weight goals are stored in kg, the canonical unit.
func (t *testContext) aGoalExistsFromTo(goalType, currentValue, targetValue string) error {
	current, err := strconv.ParseFloat(currentValue, 64)
	if err != nil {
		return fmt.Errorf("invalid current value '%s': %w", currentValue, err)
	}
	target, err := strconv.ParseFloat(targetValue, 64)
	if err != nil {
		return fmt.Errorf("invalid target value '%s': %w", targetValue, err)
	}

	unit := ""
	if goalType == "weight" {
		unit = "kg"
	}

	goalID := uuid.New()
	t.goalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:           goalID,
		UserID:       t.currentUserID,
		Type:         goalType,
		CurrentValue: current,
		TargetValue:  target,
		Unit:         unit,
		Deadline:     now.AddDate(0, 3, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(goalModel)
	return result.Error
}

func (t *testContext) aWeightEntryExistsForTheGoal(weight string) error {
	if t.goalID == uuid.Nil {
		return errors.New("no goal created yet")
	}

	value, err := strconv.ParseFloat(weight, 64)
	if err != nil {
		return fmt.Errorf("invalid weight '%s': %w", weight, err)
	}

	entryID := uuid.New()
	t.weightEntryID = entryID

	now := time.Now().UTC()
	entryModel := &model.WeightEntryModel{
		ID:        entryID,
		GoalID:    t.goalID,
		Date:      now,
		Weight:    value,
		Unit:      "kg",
		CreatedAt: now,
	}

	result := t.db.DbConn.Create(entryModel)
	return result.Error
}

func (t *testContext) aFoodEntryExists(foodName string, calories int) error {
	entryID := uuid.New()
	t.foodEntryID = entryID

	analysis, _ := json.Marshal(map[string]any{
		"food_name":    foodName,
		"calories":     calories,
		"health_score": 7.5,
	})

	now := time.Now().UTC()
	entryModel := &model.FoodEntryModel{
		ID:           entryID,
		UserID:       t.currentUserID,
		Type:         "food",
		FoodName:     foodName,
		Calories:     calories,
		HealthScore:  7.5,
		AnalysisData: analysis,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(entryModel)
	return result.Error
}

func (t *testContext) aMealPlanExistsFor(name, mealType string) error {
	planID := uuid.New()
	t.mealPlanID = planID

	now := time.Now().UTC()
	planModel := &model.MealPlanModel{
		ID:              planID,
		UserID:          t.currentUserID,
		Date:            now,
		MealType:        mealType,
		Name:            name,
		Calories:        400,
		ProteinGrams:    25,
		Ingredients:     `["oats","milk","banana"]`,
		PrepTimeMinutes: 10,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result := t.db.DbConn.Create(planModel)
	return result.Error
}

func (t *testContext) theDisplayUnitPreferenceIs(unit string) error {
	key := "prefs:display_unit:" + t.currentUserID.String()
	return t.redis.Set(context.Background(), key, unit, 0).Err()
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{pending_user_id}}", t.pendingUserID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.goalID.String())
	content = strings.ReplaceAll(content, "{{weight_entry_id}}", t.weightEntryID.String())
	content = strings.ReplaceAll(content, "{{food_entry_id}}", t.foodEntryID.String())
	content = strings.ReplaceAll(content, "{{meal_plan_id}}", t.mealPlanID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastCreatedID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the ID of a created resource if present
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastCreatedID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
