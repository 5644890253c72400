package mealplan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// ListMealPlansInput represents the input for listing a user's meal plans.
type ListMealPlansInput struct {
	UserID uuid.UUID
}

// ListMealPlansOutput represents the output of listing meal plans.
type ListMealPlansOutput struct {
	Plans []*entity.MealPlan
}

// ListMealPlansUseCase lists a user's meal plans by date.
type ListMealPlansUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewListMealPlansUseCase creates a new ListMealPlansUseCase instance.
func NewListMealPlansUseCase(mealPlanRepo adapter.MealPlanRepository) *ListMealPlansUseCase {
	return &ListMealPlansUseCase{mealPlanRepo: mealPlanRepo}
}

// Execute lists the plans.
func (uc *ListMealPlansUseCase) Execute(ctx context.Context, input ListMealPlansInput) (*ListMealPlansOutput, error) {
	plans, err := uc.mealPlanRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	return &ListMealPlansOutput{Plans: plans}, nil
}
