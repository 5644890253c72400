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

// UpdateMealPlanInput represents the input for updating a meal plan entry.
// Nil pointer fields are left unchanged.
type UpdateMealPlanInput struct {
	PlanID          uuid.UUID
	UserID          uuid.UUID
	Date            *time.Time
	MealType        *entity.MealType
	Name            *string
	Calories        *int
	ProteinGrams    *float64
	Ingredients     *[]string
	Recipe          *string
	PrepTimeMinutes *int
}

// UpdateMealPlanOutput represents the output of updating a meal plan entry.
type UpdateMealPlanOutput struct {
	Plan *entity.MealPlan
}

// UpdateMealPlanUseCase handles partial meal plan updates.
type UpdateMealPlanUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewUpdateMealPlanUseCase creates a new UpdateMealPlanUseCase instance.
func NewUpdateMealPlanUseCase(mealPlanRepo adapter.MealPlanRepository) *UpdateMealPlanUseCase {
	return &UpdateMealPlanUseCase{mealPlanRepo: mealPlanRepo}
}

// Execute applies the update, enforcing ownership.
func (uc *UpdateMealPlanUseCase) Execute(ctx context.Context, input UpdateMealPlanInput) (*UpdateMealPlanOutput, error) {
	plan, err := uc.mealPlanRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeMealPlanNotFound,
			"meal plan not found",
			domainerror.ErrMealPlanNotFound,
		)
	}

	if plan.UserID != input.UserID {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeUnauthorizedMealPlanAccess,
			"meal plan does not belong to the authenticated user",
			domainerror.ErrUnauthorizedMealPlanAccess,
		)
	}

	if input.MealType != nil {
		if !input.MealType.IsValid() {
			return nil, domainerror.NewMealPlanError(
				domainerror.ErrCodeInvalidMealType,
				"meal type must be breakfast, lunch, dinner, or snack",
				domainerror.ErrInvalidMealType,
			)
		}
		plan.MealType = *input.MealType
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewMealPlanError(
				domainerror.ErrCodeMissingMealFields,
				"name cannot be empty",
				nil,
			)
		}
		plan.Name = name
	}

	if input.Date != nil {
		plan.Date = *input.Date
	}
	if input.Calories != nil {
		plan.Calories = *input.Calories
	}
	if input.ProteinGrams != nil {
		plan.ProteinGrams = *input.ProteinGrams
	}
	if input.Ingredients != nil {
		plan.Ingredients = *input.Ingredients
	}
	if input.Recipe != nil {
		plan.Recipe = *input.Recipe
	}
	if input.PrepTimeMinutes != nil {
		plan.PrepTimeMinutes = *input.PrepTimeMinutes
	}

	plan.UpdatedAt = time.Now().UTC()

	if err := uc.mealPlanRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}

	return &UpdateMealPlanOutput{Plan: plan}, nil
}
