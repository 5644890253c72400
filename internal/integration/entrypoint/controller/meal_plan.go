package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/usecase/mealplan"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// MealPlanController handles meal planning endpoints.
type MealPlanController struct {
	createMealPlanUseCase     *mealplan.CreateMealPlanUseCase
	listMealPlansUseCase      *mealplan.ListMealPlansUseCase
	updateMealPlanUseCase     *mealplan.UpdateMealPlanUseCase
	deleteMealPlanUseCase     *mealplan.DeleteMealPlanUseCase
	generateSuggestionUseCase *mealplan.GenerateSuggestionUseCase
}

// NewMealPlanController creates a new meal plan controller instance.
func NewMealPlanController(
	createMealPlanUseCase *mealplan.CreateMealPlanUseCase,
	listMealPlansUseCase *mealplan.ListMealPlansUseCase,
	updateMealPlanUseCase *mealplan.UpdateMealPlanUseCase,
	deleteMealPlanUseCase *mealplan.DeleteMealPlanUseCase,
	generateSuggestionUseCase *mealplan.GenerateSuggestionUseCase,
) *MealPlanController {
	return &MealPlanController{
		createMealPlanUseCase:     createMealPlanUseCase,
		listMealPlansUseCase:      listMealPlansUseCase,
		updateMealPlanUseCase:     updateMealPlanUseCase,
		deleteMealPlanUseCase:     deleteMealPlanUseCase,
		generateSuggestionUseCase: generateSuggestionUseCase,
	}
}

// Create handles POST /meal-plans requests.
func (c *MealPlanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateMealPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingMealFields),
			Details: err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingMealFields),
		})
		return
	}

	input := mealplan.CreateMealPlanInput{
		UserID:          userID,
		Date:            date,
		MealType:        entity.MealType(req.MealType),
		Name:            req.Name,
		Calories:        req.Calories,
		ProteinGrams:    req.ProteinGrams,
		Ingredients:     req.Ingredients,
		Recipe:          req.Recipe,
		PrepTimeMinutes: req.PrepTimeMinutes,
	}

	output, err := c.createMealPlanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMealPlanResponse(output.Plan))
}

// List handles GET /meal-plans requests.
func (c *MealPlanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := mealplan.ListMealPlansInput{UserID: userID}

	output, err := c.listMealPlansUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealPlanListResponse(output.Plans))
}

// Update handles PUT /meal-plans/:id requests.
func (c *MealPlanController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid meal plan ID",
			Code:  string(domainerror.ErrCodeMealPlanNotFound),
		})
		return
	}

	var req dto.UpdateMealPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingMealFields),
			Details: err.Error(),
		})
		return
	}

	input := mealplan.UpdateMealPlanInput{
		PlanID:          planID,
		UserID:          userID,
		Name:            req.Name,
		Calories:        req.Calories,
		ProteinGrams:    req.ProteinGrams,
		Ingredients:     req.Ingredients,
		Recipe:          req.Recipe,
		PrepTimeMinutes: req.PrepTimeMinutes,
	}

	if req.MealType != nil {
		mealType := entity.MealType(*req.MealType)
		input.MealType = &mealType
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingMealFields),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateMealPlanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealPlanResponse(output.Plan))
}

// Delete handles DELETE /meal-plans/:id requests.
func (c *MealPlanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid meal plan ID",
			Code:  string(domainerror.ErrCodeMealPlanNotFound),
		})
		return
	}

	input := mealplan.DeleteMealPlanInput{
		PlanID: planID,
		UserID: userID,
	}

	if err := c.deleteMealPlanUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Suggest handles POST /meal-plans/suggest requests.
func (c *MealPlanController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.GenerateSuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingMealFields),
			Details: err.Error(),
		})
		return
	}

	input := mealplan.GenerateSuggestionInput{
		UserID:        userID,
		MealType:      entity.MealType(req.MealType),
		Ingredients:   req.Ingredients,
		CalorieTarget: req.CalorieTarget,
	}

	output, err := c.generateSuggestionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealSuggestionResponse(output.Suggestion))
}

// handleMealPlanError maps meal plan and vision errors to HTTP responses.
func (c *MealPlanController) handleMealPlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.MealPlanError
	if errors.As(err, &planErr) {
		ctx.JSON(getStatusCodeForMealPlanError(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	var visionErr *domainerror.VisionError
	if errors.As(err, &visionErr) {
		ctx.JSON(getStatusCodeForVisionError(visionErr.Code), dto.ErrorResponse{
			Error: visionErr.Message,
			Code:  string(visionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}

// getStatusCodeForMealPlanError returns the HTTP status code for a meal plan
// error code.
func getStatusCodeForMealPlanError(code domainerror.MealPlanErrorCode) int {
	switch code {
	case domainerror.ErrCodeMealPlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedMealPlanAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidMealType,
		domainerror.ErrCodeInvalidCalorieTarget,
		domainerror.ErrCodeMissingMealFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
