package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/usecase/foodentry"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// FoodEntryController handles food logging and vision analysis endpoints.
type FoodEntryController struct {
	logFoodEntryUseCase        *foodentry.LogFoodEntryUseCase
	logRefrigeratorScanUseCase *foodentry.LogRefrigeratorScanUseCase
	reanalyzeFoodEntryUseCase  *foodentry.ReanalyzeFoodEntryUseCase
	listFoodEntriesUseCase     *foodentry.ListFoodEntriesUseCase
	deleteFoodEntryUseCase     *foodentry.DeleteFoodEntryUseCase
}

// NewFoodEntryController creates a new food entry controller instance.
func NewFoodEntryController(
	logFoodEntryUseCase *foodentry.LogFoodEntryUseCase,
	logRefrigeratorScanUseCase *foodentry.LogRefrigeratorScanUseCase,
	reanalyzeFoodEntryUseCase *foodentry.ReanalyzeFoodEntryUseCase,
	listFoodEntriesUseCase *foodentry.ListFoodEntriesUseCase,
	deleteFoodEntryUseCase *foodentry.DeleteFoodEntryUseCase,
) *FoodEntryController {
	return &FoodEntryController{
		logFoodEntryUseCase:        logFoodEntryUseCase,
		logRefrigeratorScanUseCase: logRefrigeratorScanUseCase,
		reanalyzeFoodEntryUseCase:  reanalyzeFoodEntryUseCase,
		listFoodEntriesUseCase:     listFoodEntriesUseCase,
		deleteFoodEntryUseCase:     deleteFoodEntryUseCase,
	}
}

// Analyze handles POST /food-entries/analyze requests. The meal photo is
// analyzed and persisted as a food entry in one step.
func (c *FoodEntryController) Analyze(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AnalyzeFoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidImageData),
			Details: err.Error(),
		})
		return
	}

	input := foodentry.LogFoodEntryInput{
		UserID:       userID,
		ImageDataURL: req.Image,
	}

	output, err := c.logFoodEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFoodEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AnalyzeFoodResponse{
		Entry:    dto.ToFoodEntryResponse(output.Entry),
		Analysis: dto.ToFoodAnalysisResponse(output.Analysis),
	})
}

// AnalyzeRefrigerator handles POST /food-entries/refrigerator requests.
func (c *FoodEntryController) AnalyzeRefrigerator(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AnalyzeFoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidImageData),
			Details: err.Error(),
		})
		return
	}

	input := foodentry.LogRefrigeratorScanInput{
		UserID:       userID,
		ImageDataURL: req.Image,
	}

	output, err := c.logRefrigeratorScanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFoodEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RefrigeratorScanResponse{
		Entry:    dto.ToFoodEntryResponse(output.Entry),
		Analysis: dto.ToRefrigeratorAnalysisResponse(output.Analysis),
	})
}

// Reanalyze handles POST /food-entries/:id/reanalyze requests.
func (c *FoodEntryController) Reanalyze(ctx *gin.Context) {
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
			Error: "Invalid food entry ID",
			Code:  string(domainerror.ErrCodeFoodEntryNotFound),
		})
		return
	}

	var req dto.ReanalyzeFoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidFoodEntryType),
			Details: err.Error(),
		})
		return
	}

	input := foodentry.ReanalyzeFoodEntryInput{
		EntryID:           entryID,
		UserID:            userID,
		CorrectedFoodName: req.FoodName,
	}

	output, err := c.reanalyzeFoodEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFoodEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalyzeFoodResponse{
		Entry:    dto.ToFoodEntryResponse(output.Entry),
		Analysis: dto.ToFoodAnalysisResponse(output.Analysis),
	})
}

// List handles GET /food-entries requests. An optional "limit" query
// parameter caps the number of returned entries.
func (c *FoodEntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	input := foodentry.ListFoodEntriesInput{
		UserID: userID,
		Limit:  limit,
	}

	output, err := c.listFoodEntriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFoodEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFoodEntryListResponse(output.Entries))
}

// Delete handles DELETE /food-entries/:id requests.
func (c *FoodEntryController) Delete(ctx *gin.Context) {
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
			Error: "Invalid food entry ID",
			Code:  string(domainerror.ErrCodeFoodEntryNotFound),
		})
		return
	}

	input := foodentry.DeleteFoodEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	if err := c.deleteFoodEntryUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFoodEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleFoodEntryError maps food entry and vision errors to HTTP responses.
func (c *FoodEntryController) handleFoodEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.FoodEntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(getStatusCodeForFoodEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
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

// getStatusCodeForFoodEntryError returns the HTTP status code for a food
// entry error code.
func getStatusCodeForFoodEntryError(code domainerror.FoodEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeFoodEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedFoodEntryAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidFoodEntryType, domainerror.ErrCodeInvalidImageData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForVisionError returns the HTTP status code for a vision
// service error code.
func getStatusCodeForVisionError(code domainerror.VisionErrorCode) int {
	switch code {
	case domainerror.ErrCodeVisionRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeVisionContentPolicy:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeVisionNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
