package weightentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// ListWeightEntriesInput represents the input for listing a goal's entries.
type ListWeightEntriesInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ListWeightEntriesOutput represents the output of listing a goal's entries.
type ListWeightEntriesOutput struct {
	Entries []*entity.WeightEntry
}

// ListWeightEntriesUseCase lists a weight goal's logged measurements.
type ListWeightEntriesUseCase struct {
	goalRepo        adapter.GoalRepository
	weightEntryRepo adapter.WeightEntryRepository
}

// NewListWeightEntriesUseCase creates a new ListWeightEntriesUseCase instance.
func NewListWeightEntriesUseCase(goalRepo adapter.GoalRepository, weightEntryRepo adapter.WeightEntryRepository) *ListWeightEntriesUseCase {
	return &ListWeightEntriesUseCase{
		goalRepo:        goalRepo,
		weightEntryRepo: weightEntryRepo,
	}
}

// Execute lists the goal's entries, most recent first, enforcing ownership.
func (uc *ListWeightEntriesUseCase) Execute(ctx context.Context, input ListWeightEntriesInput) (*ListWeightEntriesOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to the authenticated user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	entries, err := uc.weightEntryRepo.FindByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}

	return &ListWeightEntriesOutput{Entries: entries}, nil
}
