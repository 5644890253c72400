package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrition-tracker/backend/internal/application/usecase/calorie"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// CalorieController handles calorie summary endpoints.
type CalorieController struct {
	dailySummaryUseCase  *calorie.GetDailySummaryUseCase
	weeklySummaryUseCase *calorie.GetWeeklySummaryUseCase
}

// NewCalorieController creates a new calorie controller instance.
func NewCalorieController(
	dailySummaryUseCase *calorie.GetDailySummaryUseCase,
	weeklySummaryUseCase *calorie.GetWeeklySummaryUseCase,
) *CalorieController {
	return &CalorieController{
		dailySummaryUseCase:  dailySummaryUseCase,
		weeklySummaryUseCase: weeklySummaryUseCase,
	}
}

// DailySummary handles GET /calories/daily requests.
func (c *CalorieController) DailySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := calorie.GetDailySummaryInput{UserID: userID}

	output, err := c.dailySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute daily summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(output))
}

// WeeklySummary handles GET /calories/weekly requests.
func (c *CalorieController) WeeklySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := calorie.GetWeeklySummaryInput{UserID: userID}

	output, err := c.weeklySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute weekly summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklySummaryResponse(output))
}
