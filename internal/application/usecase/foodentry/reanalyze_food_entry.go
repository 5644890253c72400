package foodentry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// ReanalyzeFoodEntryInput represents the input for the name-correction reanalysis.
type ReanalyzeFoodEntryInput struct {
	EntryID           uuid.UUID
	UserID            uuid.UUID
	CorrectedFoodName string
}

// ReanalyzeFoodEntryOutput represents the output of a reanalysis.
type ReanalyzeFoodEntryOutput struct {
	Entry    *entity.FoodEntry
	Analysis *adapter.FoodAnalysis
}

// ReanalyzeFoodEntryUseCase re-runs the analysis of a logged meal with a
// user-corrected food name as a hint, updating the entry in place.
type ReanalyzeFoodEntryUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
	vision        adapter.VisionService
}

// NewReanalyzeFoodEntryUseCase creates a new ReanalyzeFoodEntryUseCase instance.
func NewReanalyzeFoodEntryUseCase(foodEntryRepo adapter.FoodEntryRepository, vision adapter.VisionService) *ReanalyzeFoodEntryUseCase {
	return &ReanalyzeFoodEntryUseCase{
		foodEntryRepo: foodEntryRepo,
		vision:        vision,
	}
}

// Execute re-analyzes the entry's stored image with the corrected name hint.
func (uc *ReanalyzeFoodEntryUseCase) Execute(ctx context.Context, input ReanalyzeFoodEntryInput) (*ReanalyzeFoodEntryOutput, error) {
	hint := strings.TrimSpace(input.CorrectedFoodName)
	if hint == "" {
		return nil, domainerror.NewFoodEntryError(
			domainerror.ErrCodeInvalidFoodEntryType,
			"corrected food name is required",
			domainerror.ErrInvalidFoodEntryType,
		)
	}

	entry, err := uc.foodEntryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewFoodEntryError(
			domainerror.ErrCodeFoodEntryNotFound,
			"food entry not found",
			domainerror.ErrFoodEntryNotFound,
		)
	}

	if entry.UserID != input.UserID {
		return nil, domainerror.NewFoodEntryError(
			domainerror.ErrCodeUnauthorizedFoodEntryAccess,
			"food entry does not belong to the authenticated user",
			domainerror.ErrUnauthorizedFoodEntryAccess,
		)
	}

	if entry.Type != entity.FoodEntryTypeFood {
		return nil, domainerror.NewFoodEntryError(
			domainerror.ErrCodeInvalidFoodEntryType,
			"only meal entries can be reanalyzed",
			domainerror.ErrInvalidFoodEntryType,
		)
	}

	if !uc.vision.IsAvailable() {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionNotConfigured,
			"image analysis is not configured",
			domainerror.ErrVisionNotConfigured,
		)
	}

	analysis, err := uc.vision.AnalyzeImage(ctx, entry.ImagePath, hint)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	entry.ApplyReanalysis(analysis.FoodName, analysis.Calories, analysis.HealthScore, blob)

	if err := uc.foodEntryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update food entry: %w", err)
	}

	return &ReanalyzeFoodEntryOutput{Entry: entry, Analysis: analysis}, nil
}
