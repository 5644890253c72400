package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/usecase/user"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/middleware"
)

// AdminController handles admin account management endpoints.
type AdminController struct {
	listPendingUsersUseCase *user.ListPendingUsersUseCase
	approveUserUseCase      *user.ApproveUserUseCase
	appBaseURL              string
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	listPendingUsersUseCase *user.ListPendingUsersUseCase,
	approveUserUseCase *user.ApproveUserUseCase,
	appBaseURL string,
) *AdminController {
	return &AdminController{
		listPendingUsersUseCase: listPendingUsersUseCase,
		approveUserUseCase:      approveUserUseCase,
		appBaseURL:              appBaseURL,
	}
}

// ListPendingUsers handles GET /admin/users/pending requests.
func (c *AdminController) ListPendingUsers(ctx *gin.Context) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := user.ListPendingUsersInput{AdminID: adminID}

	output, err := c.listPendingUsersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingUserListResponse(output.Users))
}

// ApproveUser handles POST /admin/users/:id/approve requests.
func (c *AdminController) ApproveUser(ctx *gin.Context) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	input := user.ApproveUserInput{
		AdminID:  adminID,
		UserID:   userID,
		LoginURL: c.appBaseURL + "/login",
	}

	output, err := c.approveUserUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleAdminError maps auth domain errors to HTTP responses.
func (c *AdminController) handleAdminError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusInternalServerError
		switch authErr.Code {
		case domainerror.ErrCodeAdminRequired:
			status = http.StatusForbidden
		case domainerror.ErrCodeUserNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}
