// Package goal contains goal-related use cases.
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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Type         entity.GoalType
	CurrentValue float64
	TargetValue  float64
	Unit         valueobject.WeightUnit // weight goals only; defaults to kg
	Deadline     time.Time
	Reason       string
	ReasonDetail string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	clampPolicy valueobject.PlausibleRange
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:    goalRepo,
		clampPolicy: valueobject.DefaultPlausibleRange(),
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be 'weight', 'calories', or 'exercise'",
			domainerror.ErrInvalidGoalType,
		)
	}

	if input.CurrentValue <= 0 || input.TargetValue <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalValues,
			"current and target values must be greater than zero",
			domainerror.ErrInvalidGoalValues,
		)
	}

	var goal *entity.Goal
	switch input.Type {
	case entity.GoalTypeWeight:
		if input.Unit != "" && !input.Unit.IsValid() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidWeightUnit,
				"unit must be 'kg' or 'lb'",
				domainerror.ErrInvalidWeightUnit,
			)
		}
		unit := input.Unit.OrDefault()

		// Implausible values are clamped to the reference weight rather
		// than rejected, matching the self-healing rule on reads.
		current := uc.clampPolicy.Clamp(input.CurrentValue, unit)
		target := uc.clampPolicy.Clamp(input.TargetValue, unit)

		goal = entity.NewWeightGoal(input.UserID, current, target, unit, input.Deadline, input.Reason, input.ReasonDetail)

	case entity.GoalTypeCalories:
		goal = entity.NewCalorieGoal(input.UserID, input.CurrentValue, input.TargetValue, input.Deadline, false)

	case entity.GoalTypeExercise:
		goal = entity.NewExerciseGoal(input.UserID, input.CurrentValue, input.TargetValue, input.Deadline, input.Reason, input.ReasonDetail)
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
