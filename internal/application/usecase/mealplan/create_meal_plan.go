// Package mealplan contains meal plan use cases.
package mealplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// CreateMealPlanInput represents the input for creating a meal plan entry.
type CreateMealPlanInput struct {
	UserID          uuid.UUID
	Date            time.Time
	MealType        entity.MealType
	Name            string
	Calories        int
	ProteinGrams    float64
	Ingredients     []string
	Recipe          string
	PrepTimeMinutes int
}

// CreateMealPlanOutput represents the output of creating a meal plan entry.
type CreateMealPlanOutput struct {
	Plan *entity.MealPlan
}

// CreateMealPlanUseCase creates meal plan entries, manual or accepted from a
// suggestion.
type CreateMealPlanUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewCreateMealPlanUseCase creates a new CreateMealPlanUseCase instance.
func NewCreateMealPlanUseCase(mealPlanRepo adapter.MealPlanRepository) *CreateMealPlanUseCase {
	return &CreateMealPlanUseCase{mealPlanRepo: mealPlanRepo}
}

// Execute validates and persists the plan.
func (uc *CreateMealPlanUseCase) Execute(ctx context.Context, input CreateMealPlanInput) (*CreateMealPlanOutput, error) {
	if !input.MealType.IsValid() {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeInvalidMealType,
			"meal type must be breakfast, lunch, dinner, or snack",
			domainerror.ErrInvalidMealType,
		)
	}

	if strings.TrimSpace(input.Name) == "" || input.Date.IsZero() {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeMissingMealFields,
			"name and date are required",
			nil,
		)
	}

	plan := entity.NewMealPlan(
		input.UserID,
		input.Date,
		input.MealType,
		strings.TrimSpace(input.Name),
		input.Calories,
		input.ProteinGrams,
		input.Ingredients,
		input.Recipe,
		input.PrepTimeMinutes,
	)

	if err := uc.mealPlanRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}

	return &CreateMealPlanOutput{Plan: plan}, nil
}
