package mealplan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// DeleteMealPlanInput represents the input for deleting a meal plan entry.
type DeleteMealPlanInput struct {
	PlanID uuid.UUID
	UserID uuid.UUID
}

// DeleteMealPlanUseCase deletes a meal plan entry.
type DeleteMealPlanUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewDeleteMealPlanUseCase creates a new DeleteMealPlanUseCase instance.
func NewDeleteMealPlanUseCase(mealPlanRepo adapter.MealPlanRepository) *DeleteMealPlanUseCase {
	return &DeleteMealPlanUseCase{mealPlanRepo: mealPlanRepo}
}

// Execute deletes the plan, enforcing ownership.
func (uc *DeleteMealPlanUseCase) Execute(ctx context.Context, input DeleteMealPlanInput) error {
	plan, err := uc.mealPlanRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		return domainerror.NewMealPlanError(
			domainerror.ErrCodeMealPlanNotFound,
			"meal plan not found",
			domainerror.ErrMealPlanNotFound,
		)
	}

	if plan.UserID != input.UserID {
		return domainerror.NewMealPlanError(
			domainerror.ErrCodeUnauthorizedMealPlanAccess,
			"meal plan does not belong to the authenticated user",
			domainerror.ErrUnauthorizedMealPlanAccess,
		)
	}

	if err := uc.mealPlanRepo.Delete(ctx, plan.ID); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}

	return nil
}
