// Package user contains admin user management use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// ApproveUserInput represents the input for approving a pending account.
type ApproveUserInput struct {
	AdminID  uuid.UUID
	UserID   uuid.UUID
	LoginURL string
}

// ApproveUserOutput represents the output of approving an account.
type ApproveUserOutput struct {
	User *entity.User
}

// ApproveUserUseCase lets an admin approve a pending account, unlocking the
// tracked resources and notifying the user by email.
type ApproveUserUseCase struct {
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewApproveUserUseCase creates a new ApproveUserUseCase instance.
func NewApproveUserUseCase(userRepo adapter.UserRepository, emailService adapter.EmailService) *ApproveUserUseCase {
	return &ApproveUserUseCase{
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute approves the account. Approving an already approved account is a
// no-op, not an error.
func (uc *ApproveUserUseCase) Execute(ctx context.Context, input ApproveUserInput) (*ApproveUserOutput, error) {
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
			"only admins can approve accounts",
			domainerror.ErrAdminRequired,
		)
	}

	target, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if target.IsApproved {
		return &ApproveUserOutput{User: target}, nil
	}

	target.Approve()
	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to approve user: %w", err)
	}

	if err := uc.emailService.QueueAccountApprovedEmail(ctx, adapter.QueueAccountApprovedInput{
		UserID:    target.ID.String(),
		UserEmail: target.Email,
		UserName:  target.Name,
		LoginURL:  input.LoginURL,
	}); err != nil {
		// The approval already happened; a lost notification is not worth
		// failing the request over.
		slog.Warn("Failed to queue account approved email", "user_id", target.ID, "error", err)
	}

	return &ApproveUserOutput{User: target}, nil
}
