package foodentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// DeleteFoodEntryInput represents the input for deleting a food entry.
type DeleteFoodEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteFoodEntryUseCase deletes a single food entry.
type DeleteFoodEntryUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
}

// NewDeleteFoodEntryUseCase creates a new DeleteFoodEntryUseCase instance.
func NewDeleteFoodEntryUseCase(foodEntryRepo adapter.FoodEntryRepository) *DeleteFoodEntryUseCase {
	return &DeleteFoodEntryUseCase{foodEntryRepo: foodEntryRepo}
}

// Execute deletes the entry, enforcing ownership.
func (uc *DeleteFoodEntryUseCase) Execute(ctx context.Context, input DeleteFoodEntryInput) error {
	entry, err := uc.foodEntryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return domainerror.NewFoodEntryError(
			domainerror.ErrCodeFoodEntryNotFound,
			"food entry not found",
			domainerror.ErrFoodEntryNotFound,
		)
	}

	if entry.UserID != input.UserID {
		return domainerror.NewFoodEntryError(
			domainerror.ErrCodeUnauthorizedFoodEntryAccess,
			"food entry does not belong to the authenticated user",
			domainerror.ErrUnauthorizedFoodEntryAccess,
		)
	}

	if err := uc.foodEntryRepo.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete food entry: %w", err)
	}

	return nil
}
