package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// GetGoalInput represents the input for retrieving a single goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of retrieving a single goal.
type GetGoalOutput struct {
	Goal     *entity.Goal
	Progress int
	Status   valueobject.GoalStatus

	// LatestWeight is the most recent logged weight in the goal's stored
	// unit, nil when absent. Weight goals only.
	LatestWeight *float64
}

// GetGoalUseCase retrieves a single goal with derived progress.
type GetGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	weightEntryRepo adapter.WeightEntryRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, weightEntryRepo adapter.WeightEntryRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:        goalRepo,
		weightEntryRepo: weightEntryRepo,
	}
}

// Execute retrieves the goal, enforcing ownership.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	output := &GetGoalOutput{Goal: goal}

	if goal.Type != entity.GoalTypeWeight {
		output.Progress = valueobject.RatioProgress(goal.CurrentValue, goal.TargetValue)
		output.Status = valueobject.RatioStatus(goal.CurrentValue, goal.TargetValue)
		return output, nil
	}

	latest, err := uc.weightEntryRepo.FindLatestByGoalID(ctx, goal.ID)
	if err != nil {
		slog.Warn("Failed to load latest weight entry", "goal_id", goal.ID, "error", err)
		latest = nil
	}

	if latest == nil {
		output.Status = valueobject.GoalStatusNeutral
		return output, nil
	}

	latestWeight := valueobject.ConvertWeight(latest.Weight, latest.Unit, goal.EffectiveUnit())
	output.LatestWeight = &latestWeight
	output.Progress = valueobject.WeightProgress(goal.CurrentValue, goal.TargetValue, latestWeight)
	output.Status = valueobject.WeightStatus(goal.CurrentValue, goal.TargetValue, latestWeight, true)

	return output, nil
}
