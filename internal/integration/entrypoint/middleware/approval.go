package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/entrypoint/dto"
)

// ApprovalMiddleware blocks access to tracked resources until an admin has
// approved the account. It runs after AuthMiddleware and relies on the user
// ID it stored in the context.
type ApprovalMiddleware struct {
	userRepo adapter.UserRepository
}

// NewApprovalMiddleware creates a new approval middleware instance.
func NewApprovalMiddleware(userRepo adapter.UserRepository) *ApprovalMiddleware {
	return &ApprovalMiddleware{
		userRepo: userRepo,
	}
}

// RequireApproved returns a Gin middleware handler that rejects requests
// from accounts still awaiting approval.
func (m *ApprovalMiddleware) RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			c.Abort()
			return
		}

		if !user.IsApproved {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Account is awaiting admin approval",
				Code:  string(domainerror.ErrCodeAccountNotApproved),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
