package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// UpdateGoalInput represents the input for updating a goal. Nil pointer
// fields are left unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	CurrentValue *float64
	TargetValue  *float64
	Unit         *valueobject.WeightUnit
	Deadline     *time.Time
	Reason       *string
	ReasonDetail *string
}

// UpdateGoalOutput represents the output of updating a goal.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles partial goal updates.
type UpdateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	clampPolicy valueobject.PlausibleRange
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:    goalRepo,
		clampPolicy: valueobject.DefaultPlausibleRange(),
	}
}

// Execute applies the update, enforcing ownership and weight plausibility.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Unit != nil {
		if goal.Type != entity.GoalTypeWeight {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidWeightUnit,
				"unit applies to weight goals only",
				domainerror.ErrInvalidWeightUnit,
			)
		}
		if !input.Unit.IsValid() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidWeightUnit,
				"unit must be 'kg' or 'lb'",
				domainerror.ErrInvalidWeightUnit,
			)
		}
		goal.Unit = *input.Unit
	}

	if input.CurrentValue != nil {
		if *input.CurrentValue <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalValues,
				"current value must be greater than zero",
				domainerror.ErrInvalidGoalValues,
			)
		}
		goal.CurrentValue = *input.CurrentValue
	}

	if input.TargetValue != nil {
		if *input.TargetValue <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalValues,
				"target value must be greater than zero",
				domainerror.ErrInvalidGoalValues,
			)
		}
		goal.TargetValue = *input.TargetValue
	}

	if input.Deadline != nil {
		goal.Deadline = *input.Deadline
	}
	if input.Reason != nil {
		goal.Reason = *input.Reason
	}
	if input.ReasonDetail != nil {
		goal.ReasonDetail = *input.ReasonDetail
	}

	if goal.Type == entity.GoalTypeWeight {
		unit := goal.EffectiveUnit()
		goal.CurrentValue = uc.clampPolicy.Clamp(goal.CurrentValue, unit)
		goal.TargetValue = uc.clampPolicy.Clamp(goal.TargetValue, unit)
	}

	// A manual edit to an automatic calorie goal hands control back to the
	// user; the weekly sync updates values but never flips this back.
	if goal.Type == entity.GoalTypeCalories && goal.IsAutomatic && input.TargetValue != nil {
		goal.IsAutomatic = false
	}

	goal.Touch()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
