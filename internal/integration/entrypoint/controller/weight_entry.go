package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/usecase/weightentry"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// WeightEntryController handles weight entry endpoints.
type WeightEntryController struct {
	addWeightEntryUseCase    *weightentry.AddWeightEntryUseCase
	listWeightEntriesUseCase *weightentry.ListWeightEntriesUseCase
	deleteWeightEntryUseCase *weightentry.DeleteWeightEntryUseCase
}

// NewWeightEntryController creates a new weight entry controller instance.
func NewWeightEntryController(
	addWeightEntryUseCase *weightentry.AddWeightEntryUseCase,
	listWeightEntriesUseCase *weightentry.ListWeightEntriesUseCase,
	deleteWeightEntryUseCase *weightentry.DeleteWeightEntryUseCase,
) *WeightEntryController {
	return &WeightEntryController{
		addWeightEntryUseCase:    addWeightEntryUseCase,
		listWeightEntriesUseCase: listWeightEntriesUseCase,
		deleteWeightEntryUseCase: deleteWeightEntryUseCase,
	}
}

// Add handles POST /goals/:id/weight-entries requests.
func (c *WeightEntryController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	var req dto.AddWeightEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidGoalValues),
			Details: err.Error(),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidGoalValues),
			})
			return
		}
	}

	input := weightentry.AddWeightEntryInput{
		GoalID: goalID,
		UserID: userID,
		Date:   date,
		Weight: req.Weight,
		Unit:   valueobject.WeightUnit(req.Unit),
		Notes:  req.Notes,
	}

	output, err := c.addWeightEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeightEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWeightEntryResponse(output.Entry))
}

// List handles GET /goals/:id/weight-entries requests.
func (c *WeightEntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	input := weightentry.ListWeightEntriesInput{
		GoalID: goalID,
		UserID: userID,
	}

	output, err := c.listWeightEntriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeightEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeightEntryListResponse(output.Entries))
}

// Delete handles DELETE /weight-entries/:id requests.
func (c *WeightEntryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid weight entry ID",
			Code:  string(domainerror.ErrCodeWeightEntryNotFound),
		})
		return
	}

	input := weightentry.DeleteWeightEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	if err := c.deleteWeightEntryUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleWeightEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleWeightEntryError maps goal domain errors to HTTP responses. Weight
// entries share the goal error space since every entry belongs to a goal.
func (c *WeightEntryController) handleWeightEntryError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}
