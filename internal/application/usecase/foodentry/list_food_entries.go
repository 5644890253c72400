package foodentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// defaultListLimit bounds unpaginated entry lists.
const defaultListLimit = 50

// ListFoodEntriesInput represents the input for listing a user's entries.
type ListFoodEntriesInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListFoodEntriesOutput represents the output of listing entries.
type ListFoodEntriesOutput struct {
	Entries []*entity.FoodEntry
}

// ListFoodEntriesUseCase lists a user's food entries, newest first.
type ListFoodEntriesUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
}

// NewListFoodEntriesUseCase creates a new ListFoodEntriesUseCase instance.
func NewListFoodEntriesUseCase(foodEntryRepo adapter.FoodEntryRepository) *ListFoodEntriesUseCase {
	return &ListFoodEntriesUseCase{foodEntryRepo: foodEntryRepo}
}

// Execute lists the entries.
func (uc *ListFoodEntriesUseCase) Execute(ctx context.Context, input ListFoodEntriesInput) (*ListFoodEntriesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries, err := uc.foodEntryRepo.FindByUserID(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}

	return &ListFoodEntriesOutput{Entries: entries}, nil
}
