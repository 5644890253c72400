// Package weightentry contains weight entry use cases.
package weightentry

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

// AddWeightEntryInput represents the input for logging a weight measurement.
type AddWeightEntryInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Date   time.Time
	Weight float64
	Unit   valueobject.WeightUnit
	Notes  string
}

// AddWeightEntryOutput represents the output of logging a weight measurement.
type AddWeightEntryOutput struct {
	Entry *entity.WeightEntry
}

// AddWeightEntryUseCase logs a weight measurement against a weight goal.
type AddWeightEntryUseCase struct {
	goalRepo        adapter.GoalRepository
	weightEntryRepo adapter.WeightEntryRepository
	clampPolicy     valueobject.PlausibleRange
}

// NewAddWeightEntryUseCase creates a new AddWeightEntryUseCase instance.
func NewAddWeightEntryUseCase(goalRepo adapter.GoalRepository, weightEntryRepo adapter.WeightEntryRepository) *AddWeightEntryUseCase {
	return &AddWeightEntryUseCase{
		goalRepo:        goalRepo,
		weightEntryRepo: weightEntryRepo,
		clampPolicy:     valueobject.DefaultPlausibleRange(),
	}
}

// Execute logs the measurement. The entry keeps the unit it was logged in;
// conversion happens at read time against the goal's stored unit.
func (uc *AddWeightEntryUseCase) Execute(ctx context.Context, input AddWeightEntryInput) (*AddWeightEntryOutput, error) {
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

	if goal.Type != entity.GoalTypeWeight {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"weight entries can only be logged against weight goals",
			domainerror.ErrInvalidGoalType,
		)
	}

	if input.Unit != "" && !input.Unit.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidWeightUnit,
			"unit must be 'kg' or 'lb'",
			domainerror.ErrInvalidWeightUnit,
		)
	}
	unit := input.Unit.OrDefault()

	if !uc.clampPolicy.IsPlausible(input.Weight, unit) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalValues,
			fmt.Sprintf("weight must be between 0 and %.0f %s", uc.clampPolicy.Max(unit), unit),
			domainerror.ErrInvalidGoalValues,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := entity.NewWeightEntry(goal.ID, date, input.Weight, unit, input.Notes)

	if err := uc.weightEntryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create weight entry: %w", err)
	}

	return &AddWeightEntryOutput{Entry: entry}, nil
}
