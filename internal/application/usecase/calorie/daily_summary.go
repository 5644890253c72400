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

// trailingDays is how far back the daily summary looks.
const trailingDays = 30

// GetDailySummaryInput represents the input for the daily calorie summary.
type GetDailySummaryInput struct {
	UserID uuid.UUID
}

// GetDailySummaryOutput represents the trailing daily calorie summary.
type GetDailySummaryOutput struct {
	Days          []DailyTotal // newest first; days without entries are absent
	TodayCalories int

	// TargetCalories is the active calorie goal's target, nil when the user
	// has no calorie goal.
	TargetCalories *float64
}

// GetDailySummaryUseCase computes per-day calorie totals over the trailing
// thirty days. Viewing the summary also opportunistically runs the weekly
// automatic goal sync.
type GetDailySummaryUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
	goalRepo      adapter.GoalRepository
	autoGoalSync  *SyncAutoGoalUseCase

	now func() time.Time
}

// NewGetDailySummaryUseCase creates a new GetDailySummaryUseCase instance.
func NewGetDailySummaryUseCase(
	foodEntryRepo adapter.FoodEntryRepository,
	goalRepo adapter.GoalRepository,
	autoGoalSync *SyncAutoGoalUseCase,
) *GetDailySummaryUseCase {
	return &GetDailySummaryUseCase{
		foodEntryRepo: foodEntryRepo,
		goalRepo:      goalRepo,
		autoGoalSync:  autoGoalSync,
		now:           time.Now,
	}
}

// Execute computes the summary. Refrigerator scans never count toward intake.
func (uc *GetDailySummaryUseCase) Execute(ctx context.Context, input GetDailySummaryInput) (*GetDailySummaryOutput, error) {
	if uc.autoGoalSync != nil {
		if err := uc.autoGoalSync.Execute(ctx, SyncAutoGoalInput{UserID: input.UserID}); err != nil {
			slog.Warn("Automatic calorie goal sync failed", "user_id", input.UserID, "error", err)
		}
	}

	now := uc.now()
	loc := now.Location()
	since := localDay(now, loc).AddDate(0, 0, -(trailingDays - 1))

	entries, err := uc.foodEntryRepo.FindByUserSince(ctx, input.UserID, entity.FoodEntryTypeFood, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load food entries: %w", err)
	}

	output := &GetDailySummaryOutput{Days: dailyTotals(entries, loc)}

	today := localDay(now, loc)
	for _, d := range output.Days {
		if d.Date.Equal(today) {
			output.TodayCalories = d.Calories
			break
		}
	}

	goal, err := uc.goalRepo.FindActiveByUserAndType(ctx, input.UserID, entity.GoalTypeCalories)
	if err != nil {
		slog.Warn("Failed to load calorie goal for summary", "user_id", input.UserID, "error", err)
	} else if goal != nil {
		target := goal.TargetValue
		output.TargetCalories = &target
	}

	return output, nil
}
