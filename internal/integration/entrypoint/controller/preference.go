package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrition-tracker/backend/internal/application/usecase/preference"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// PreferenceController handles user preference endpoints.
type PreferenceController struct {
	getDisplayUnitUseCase *preference.GetDisplayUnitUseCase
	setDisplayUnitUseCase *preference.SetDisplayUnitUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getDisplayUnitUseCase *preference.GetDisplayUnitUseCase,
	setDisplayUnitUseCase *preference.SetDisplayUnitUseCase,
) *PreferenceController {
	return &PreferenceController{
		getDisplayUnitUseCase: getDisplayUnitUseCase,
		setDisplayUnitUseCase: setDisplayUnitUseCase,
	}
}

// GetDisplayUnit handles GET /preferences/display-unit requests.
func (c *PreferenceController) GetDisplayUnit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := preference.GetDisplayUnitInput{UserID: userID}

	output, err := c.getDisplayUnitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read display unit preference",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DisplayUnitResponse{Unit: string(output.Unit)})
}

// SetDisplayUnit handles PUT /preferences/display-unit requests.
func (c *PreferenceController) SetDisplayUnit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetDisplayUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidWeightUnit),
			Details: err.Error(),
		})
		return
	}

	input := preference.SetDisplayUnitInput{
		UserID: userID,
		Unit:   valueobject.WeightUnit(req.Unit),
	}

	if err := c.setDisplayUnitUseCase.Execute(ctx.Request.Context(), input); err != nil {
		var goalErr *domainerror.GoalError
		if errors.As(err, &goalErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: goalErr.Message,
				Code:  string(goalErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store display unit preference",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DisplayUnitResponse{Unit: req.Unit})
}
