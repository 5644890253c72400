package weightentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// DeleteWeightEntryInput represents the input for deleting a weight entry.
type DeleteWeightEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteWeightEntryUseCase deletes a single weight measurement.
type DeleteWeightEntryUseCase struct {
	goalRepo        adapter.GoalRepository
	weightEntryRepo adapter.WeightEntryRepository
}

// NewDeleteWeightEntryUseCase creates a new DeleteWeightEntryUseCase instance.
func NewDeleteWeightEntryUseCase(goalRepo adapter.GoalRepository, weightEntryRepo adapter.WeightEntryRepository) *DeleteWeightEntryUseCase {
	return &DeleteWeightEntryUseCase{
		goalRepo:        goalRepo,
		weightEntryRepo: weightEntryRepo,
	}
}

// Execute deletes the entry. Ownership runs through the parent goal since
// entries do not carry a user reference themselves.
func (uc *DeleteWeightEntryUseCase) Execute(ctx context.Context, input DeleteWeightEntryInput) error {
	entry, err := uc.weightEntryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeWeightEntryNotFound,
			"weight entry not found",
			domainerror.ErrWeightEntryNotFound,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, entry.GoalID)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to the authenticated user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.weightEntryRepo.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete weight entry: %w", err)
	}

	return nil
}
