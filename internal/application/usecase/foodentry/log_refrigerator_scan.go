package foodentry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// LogRefrigeratorScanInput represents the input for logging a refrigerator scan.
type LogRefrigeratorScanInput struct {
	UserID       uuid.UUID
	ImageDataURL string
}

// LogRefrigeratorScanOutput represents the output of logging a refrigerator scan.
type LogRefrigeratorScanOutput struct {
	Entry    *entity.FoodEntry
	Analysis *adapter.RefrigeratorAnalysis
}

// LogRefrigeratorScanUseCase analyzes a refrigerator photo and persists the
// inventory as a refrigerator entry. Refrigerator entries carry no calories
// and are excluded from intake aggregation.
type LogRefrigeratorScanUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
	vision        adapter.VisionService
}

// NewLogRefrigeratorScanUseCase creates a new LogRefrigeratorScanUseCase instance.
func NewLogRefrigeratorScanUseCase(foodEntryRepo adapter.FoodEntryRepository, vision adapter.VisionService) *LogRefrigeratorScanUseCase {
	return &LogRefrigeratorScanUseCase{
		foodEntryRepo: foodEntryRepo,
		vision:        vision,
	}
}

// Execute analyzes the image and persists the scan.
func (uc *LogRefrigeratorScanUseCase) Execute(ctx context.Context, input LogRefrigeratorScanInput) (*LogRefrigeratorScanOutput, error) {
	if err := validateImageDataURL(input.ImageDataURL); err != nil {
		return nil, err
	}

	if !uc.vision.IsAvailable() {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionNotConfigured,
			"image analysis is not configured",
			domainerror.ErrVisionNotConfigured,
		)
	}

	analysis, err := uc.vision.AnalyzeRefrigeratorImage(ctx, input.ImageDataURL)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	entry := entity.NewFoodEntry(
		input.UserID,
		entity.FoodEntryTypeRefrigerator,
		input.ImageDataURL,
		"Refrigerator scan",
		0,
		0,
		blob,
	)

	if err := uc.foodEntryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create refrigerator entry: %w", err)
	}

	return &LogRefrigeratorScanOutput{Entry: entry, Analysis: analysis}, nil
}
