// Package preference contains display preference use cases.
package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// GetDisplayUnitInput represents the input for reading the display unit.
type GetDisplayUnitInput struct {
	UserID uuid.UUID
}

// GetDisplayUnitOutput represents the output of reading the display unit.
type GetDisplayUnitOutput struct {
	Unit valueobject.WeightUnit
}

// GetDisplayUnitUseCase reads the user's preferred weight display unit.
type GetDisplayUnitUseCase struct {
	preferences adapter.PreferenceStore
}

// NewGetDisplayUnitUseCase creates a new GetDisplayUnitUseCase instance.
func NewGetDisplayUnitUseCase(preferences adapter.PreferenceStore) *GetDisplayUnitUseCase {
	return &GetDisplayUnitUseCase{preferences: preferences}
}

// Execute reads the preference, defaulting to kilograms.
func (uc *GetDisplayUnitUseCase) Execute(ctx context.Context, input GetDisplayUnitInput) (*GetDisplayUnitOutput, error) {
	unit, err := uc.preferences.GetDisplayUnit(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read display unit: %w", err)
	}
	return &GetDisplayUnitOutput{Unit: unit.OrDefault()}, nil
}

// SetDisplayUnitInput represents the input for storing the display unit.
type SetDisplayUnitInput struct {
	UserID uuid.UUID
	Unit   valueobject.WeightUnit
}

// SetDisplayUnitUseCase stores the user's preferred weight display unit.
// The preference affects rendering only; stored goal values are never
// rewritten when it changes.
type SetDisplayUnitUseCase struct {
	preferences adapter.PreferenceStore
}

// NewSetDisplayUnitUseCase creates a new SetDisplayUnitUseCase instance.
func NewSetDisplayUnitUseCase(preferences adapter.PreferenceStore) *SetDisplayUnitUseCase {
	return &SetDisplayUnitUseCase{preferences: preferences}
}

// Execute validates and stores the preference.
func (uc *SetDisplayUnitUseCase) Execute(ctx context.Context, input SetDisplayUnitInput) error {
	if !input.Unit.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidWeightUnit,
			"unit must be 'kg' or 'lb'",
			domainerror.ErrInvalidWeightUnit,
		)
	}

	if err := uc.preferences.SetDisplayUnit(ctx, input.UserID, input.Unit); err != nil {
		return fmt.Errorf("failed to store display unit: %w", err)
	}

	return nil
}
