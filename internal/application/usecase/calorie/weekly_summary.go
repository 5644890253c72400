package calorie

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// trailingWeeks is how many ISO weeks back the weekly summary looks.
const trailingWeeks = 12

// GetWeeklySummaryInput represents the input for the weekly calorie summary.
type GetWeeklySummaryInput struct {
	UserID uuid.UUID
}

// GetWeeklySummaryOutput represents the weekly calorie summary.
type GetWeeklySummaryOutput struct {
	Weeks []WeeklyTotal // newest first, recomputed from entries

	// Archived holds the frozen records written when past weeks completed.
	Archived []*entity.CalorieHistory
}

// GetWeeklySummaryUseCase computes ISO-week calorie aggregates. Live weeks
// are always recomputed from entries; the archive is returned alongside, not
// merged, since archived values are frozen at week end.
type GetWeeklySummaryUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
	historyRepo   adapter.CalorieHistoryRepository
	autoGoalSync  *SyncAutoGoalUseCase

	now func() time.Time
}

// NewGetWeeklySummaryUseCase creates a new GetWeeklySummaryUseCase instance.
func NewGetWeeklySummaryUseCase(
	foodEntryRepo adapter.FoodEntryRepository,
	historyRepo adapter.CalorieHistoryRepository,
	autoGoalSync *SyncAutoGoalUseCase,
) *GetWeeklySummaryUseCase {
	return &GetWeeklySummaryUseCase{
		foodEntryRepo: foodEntryRepo,
		historyRepo:   historyRepo,
		autoGoalSync:  autoGoalSync,
		now:           time.Now,
	}
}

// Execute computes the summary.
func (uc *GetWeeklySummaryUseCase) Execute(ctx context.Context, input GetWeeklySummaryInput) (*GetWeeklySummaryOutput, error) {
	if uc.autoGoalSync != nil {
		if err := uc.autoGoalSync.Execute(ctx, SyncAutoGoalInput{UserID: input.UserID}); err != nil {
			slog.Warn("Automatic calorie goal sync failed", "user_id", input.UserID, "error", err)
		}
	}

	now := uc.now()
	loc := now.Location()
	since := weekStart(now, loc).AddDate(0, 0, -7*(trailingWeeks-1))

	entries, err := uc.foodEntryRepo.FindByUserSince(ctx, input.UserID, entity.FoodEntryTypeFood, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load food entries: %w", err)
	}

	output := &GetWeeklySummaryOutput{Weeks: weeklyTotals(entries, loc)}

	archived, err := uc.historyRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		slog.Warn("Failed to load archived calorie history", "user_id", input.UserID, "error", err)
	} else {
		output.Archived = archived
	}

	return output, nil
}
