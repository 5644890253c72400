package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// ListPendingUsersInput represents the input for listing pending accounts.
type ListPendingUsersInput struct {
	AdminID uuid.UUID
}

// ListPendingUsersOutput represents the output of listing pending accounts.
type ListPendingUsersOutput struct {
	Users []*entity.User
}

// ListPendingUsersUseCase lists accounts awaiting admin approval.
type ListPendingUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListPendingUsersUseCase creates a new ListPendingUsersUseCase instance.
func NewListPendingUsersUseCase(userRepo adapter.UserRepository) *ListPendingUsersUseCase {
	return &ListPendingUsersUseCase{userRepo: userRepo}
}

// Execute lists pending accounts, oldest first.
func (uc *ListPendingUsersUseCase) Execute(ctx context.Context, input ListPendingUsersInput) (*ListPendingUsersOutput, error) {
	admin, err := uc.userRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"admin user not found",
			domainerror.ErrUserNotFound,
		)
	}
	if !admin.IsAdmin() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAdminRequired,
			"only admins can list pending accounts",
			domainerror.ErrAdminRequired,
		)
	}

	users, err := uc.userRepo.ListPendingApproval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}

	return &ListPendingUsersOutput{Users: users}, nil
}
