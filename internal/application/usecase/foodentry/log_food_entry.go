// Package foodentry contains food entry use cases.
package foodentry

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// LogFoodEntryInput represents the input for logging a meal photo.
type LogFoodEntryInput struct {
	UserID       uuid.UUID
	ImageDataURL string
}

// LogFoodEntryOutput represents the output of logging a meal photo.
type LogFoodEntryOutput struct {
	Entry    *entity.FoodEntry
	Analysis *adapter.FoodAnalysis
}

// LogFoodEntryUseCase analyzes a meal photo and persists the result as a
// food entry.
type LogFoodEntryUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
	vision        adapter.VisionService
}

// NewLogFoodEntryUseCase creates a new LogFoodEntryUseCase instance.
func NewLogFoodEntryUseCase(foodEntryRepo adapter.FoodEntryRepository, vision adapter.VisionService) *LogFoodEntryUseCase {
	return &LogFoodEntryUseCase{
		foodEntryRepo: foodEntryRepo,
		vision:        vision,
	}
}

// Execute analyzes the image and persists the entry. The full analysis is
// stored as an opaque JSON blob next to the promoted columns.
func (uc *LogFoodEntryUseCase) Execute(ctx context.Context, input LogFoodEntryInput) (*LogFoodEntryOutput, error) {
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

	analysis, err := uc.vision.AnalyzeImage(ctx, input.ImageDataURL, "")
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	entry := entity.NewFoodEntry(
		input.UserID,
		entity.FoodEntryTypeFood,
		input.ImageDataURL,
		analysis.FoodName,
		analysis.Calories,
		analysis.HealthScore,
		blob,
	)

	if err := uc.foodEntryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}

	return &LogFoodEntryOutput{Entry: entry, Analysis: analysis}, nil
}

// validateImageDataURL checks the payload is a base64 image data URL without
// decoding the whole image. The vision adapter decodes it for real; this
// check exists to reject junk before spending an API call.
func validateImageDataURL(dataURL string) error {
	invalid := func() error {
		return domainerror.NewFoodEntryError(
			domainerror.ErrCodeInvalidImageData,
			"image must be a base64 data URL",
			domainerror.ErrInvalidImageData,
		)
	}

	if !strings.HasPrefix(dataURL, "data:image/") {
		return invalid()
	}
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return invalid()
	}
	payload := dataURL[idx+len(";base64,"):]
	if payload == "" {
		return invalid()
	}
	// Probe the first chunk only.
	probe := payload
	if len(probe) > 64 {
		probe = probe[:64]
	}
	if _, err := base64.StdEncoding.DecodeString(probe[:len(probe)-len(probe)%4]); err != nil {
		return invalid()
	}
	return nil
}
