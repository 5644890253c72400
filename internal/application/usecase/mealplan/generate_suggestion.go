package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// suggestionHistoryLimit is how many recent suggestions feed the generation
// context so the model avoids repeating itself.
const suggestionHistoryLimit = 10

// GenerateSuggestionInput represents the input for generating a meal suggestion.
type GenerateSuggestionInput struct {
	UserID        uuid.UUID
	MealType      entity.MealType
	Ingredients   []string
	CalorieTarget int
}

// GenerateSuggestionOutput represents the output of generating a suggestion.
type GenerateSuggestionOutput struct {
	Suggestion *entity.AIMealSuggestion
}

// GenerateSuggestionUseCase generates a meal suggestion from available
// ingredients and recent suggestion history, persisting the result.
type GenerateSuggestionUseCase struct {
	suggestionRepo adapter.AIMealSuggestionRepository
	foodEntryRepo  adapter.FoodEntryRepository
	vision         adapter.VisionService

	now func() time.Time
}

// NewGenerateSuggestionUseCase creates a new GenerateSuggestionUseCase instance.
func NewGenerateSuggestionUseCase(
	suggestionRepo adapter.AIMealSuggestionRepository,
	foodEntryRepo adapter.FoodEntryRepository,
	vision adapter.VisionService,
) *GenerateSuggestionUseCase {
	return &GenerateSuggestionUseCase{
		suggestionRepo: suggestionRepo,
		foodEntryRepo:  foodEntryRepo,
		vision:         vision,
		now:            time.Now,
	}
}

// Execute generates and persists a suggestion. Recently eaten meals and past
// suggestions are passed as avoid-list context.
func (uc *GenerateSuggestionUseCase) Execute(ctx context.Context, input GenerateSuggestionInput) (*GenerateSuggestionOutput, error) {
	if !input.MealType.IsValid() {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeInvalidMealType,
			"meal type must be breakfast, lunch, dinner, or snack",
			domainerror.ErrInvalidMealType,
		)
	}

	if input.CalorieTarget < 0 {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeInvalidCalorieTarget,
			"calorie target cannot be negative",
			domainerror.ErrInvalidCalorieTarget,
		)
	}

	if !uc.vision.IsAvailable() {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionNotConfigured,
			"meal suggestions are not configured",
			domainerror.ErrVisionNotConfigured,
		)
	}

	history := uc.collectHistory(ctx, input.UserID)

	suggestion, err := uc.vision.GenerateMealPlan(ctx, adapter.MealPlanRequest{
		Ingredients:   input.Ingredients,
		History:       history,
		MealType:      string(input.MealType),
		CalorieTarget: input.CalorieTarget,
	})
	if err != nil {
		return nil, err
	}

	record := entity.NewAIMealSuggestion(
		input.UserID,
		input.MealType,
		input.CalorieTarget,
		suggestion.Calories,
		suggestion.Name,
		suggestion.ProteinG,
		suggestion.Ingredients,
		suggestion.Recipe,
		suggestion.TimeMinutes,
	)

	if err := uc.suggestionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist meal suggestion: %w", err)
	}

	return &GenerateSuggestionOutput{Suggestion: record}, nil
}

// collectHistory gathers recent suggestion names and this week's logged meal
// names. Failures shrink the context instead of blocking generation.
func (uc *GenerateSuggestionUseCase) collectHistory(ctx context.Context, userID uuid.UUID) []string {
	var history []string

	past, err := uc.suggestionRepo.FindByUserID(ctx, userID, suggestionHistoryLimit)
	if err != nil {
		slog.Warn("Failed to load suggestion history", "user_id", userID, "error", err)
	} else {
		for _, s := range past {
			history = append(history, s.Name)
		}
	}

	since := uc.now().AddDate(0, 0, -7)
	eaten, err := uc.foodEntryRepo.FindByUserSince(ctx, userID, entity.FoodEntryTypeFood, since)
	if err != nil {
		slog.Warn("Failed to load recent meals for suggestion context", "user_id", userID, "error", err)
	} else {
		for _, e := range eaten {
			if e.FoodName != "" {
				history = append(history, e.FoodName)
			}
		}
	}

	return history
}
