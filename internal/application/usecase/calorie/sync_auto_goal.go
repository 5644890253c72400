package calorie

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// autoTargetFactor sets the automatic calorie target at 90% of observed
// average intake, a mild deficit.
const autoTargetFactor = 0.9

// SyncAutoGoalInput represents the input for the automatic goal sync.
type SyncAutoGoalInput struct {
	UserID uuid.UUID
}

// SyncAutoGoalUseCase maintains the automatic calorie goal. Once per ISO week
// it archives the completed previous week and refreshes the calorie goal from
// the trailing seven days of observed intake. The per-week marker is
// persisted, so restarts do not retrigger the sync; a lost marker costs one
// redundant run, nothing more.
type SyncAutoGoalUseCase struct {
	foodEntryRepo adapter.FoodEntryRepository
	goalRepo      adapter.GoalRepository
	historyRepo   adapter.CalorieHistoryRepository
	markers       adapter.AutoGoalMarkerStore

	now func() time.Time
}

// NewSyncAutoGoalUseCase creates a new SyncAutoGoalUseCase instance.
func NewSyncAutoGoalUseCase(
	foodEntryRepo adapter.FoodEntryRepository,
	goalRepo adapter.GoalRepository,
	historyRepo adapter.CalorieHistoryRepository,
	markers adapter.AutoGoalMarkerStore,
) *SyncAutoGoalUseCase {
	return &SyncAutoGoalUseCase{
		foodEntryRepo: foodEntryRepo,
		goalRepo:      goalRepo,
		historyRepo:   historyRepo,
		markers:       markers,
		now:           time.Now,
	}
}

// Execute runs the weekly sync when it has not run for the current ISO week.
// With no intake logged in the trailing window the sync leaves the marker
// unset, so a later log in the same week still gets picked up.
func (uc *SyncAutoGoalUseCase) Execute(ctx context.Context, input SyncAutoGoalInput) error {
	now := uc.now()
	loc := now.Location()
	currentWeek := weekStart(now, loc)

	ran, err := uc.markers.HasRun(ctx, input.UserID, currentWeek)
	if err != nil {
		// Treat an unreadable marker as not run; the work is idempotent.
		slog.Warn("Failed to read auto goal marker", "user_id", input.UserID, "error", err)
	}
	if ran {
		return nil
	}

	if err := uc.archivePreviousWeek(ctx, input.UserID, currentWeek, loc); err != nil {
		slog.Warn("Failed to archive completed calorie week", "user_id", input.UserID, "error", err)
	}

	since := localDay(now, loc).AddDate(0, 0, -6)
	entries, err := uc.foodEntryRepo.FindByUserSince(ctx, input.UserID, entity.FoodEntryTypeFood, since)
	if err != nil {
		return fmt.Errorf("failed to load trailing food entries: %w", err)
	}

	days := dailyTotals(entries, loc)
	if len(days) == 0 {
		return nil
	}

	total := 0
	for _, d := range days {
		total += d.Calories
	}
	average := math.Round(float64(total) / float64(len(days)))

	if err := uc.upsertCalorieGoal(ctx, input.UserID, average, now); err != nil {
		return err
	}

	if err := uc.markers.MarkRun(ctx, input.UserID, currentWeek); err != nil {
		slog.Warn("Failed to write auto goal marker", "user_id", input.UserID, "error", err)
	}

	return nil
}

// archivePreviousWeek freezes the completed week's aggregate, once. Weeks
// with no entries leave no record.
func (uc *SyncAutoGoalUseCase) archivePreviousWeek(ctx context.Context, userID uuid.UUID, currentWeek time.Time, loc *time.Location) error {
	prevStart := currentWeek.AddDate(0, 0, -7)

	exists, err := uc.historyRepo.ExistsForWeek(ctx, userID, prevStart)
	if err != nil {
		return fmt.Errorf("failed to check archived week: %w", err)
	}
	if exists {
		return nil
	}

	entries, err := uc.foodEntryRepo.FindByUserSince(ctx, userID, entity.FoodEntryTypeFood, prevStart)
	if err != nil {
		return fmt.Errorf("failed to load previous week entries: %w", err)
	}

	total := 0
	daysWithData := make(map[time.Time]struct{})
	for _, e := range entries {
		day := localDay(e.CreatedAt, loc)
		if day.Before(prevStart) || !day.Before(currentWeek) {
			continue
		}
		total += e.Calories
		daysWithData[day] = struct{}{}
	}
	if len(daysWithData) == 0 {
		return nil
	}

	record := entity.NewCalorieHistory(
		userID,
		prevStart,
		prevStart.AddDate(0, 0, 6),
		total,
		float64(total)/float64(len(daysWithData)),
		len(daysWithData),
	)
	if err := uc.historyRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to archive calorie week: %w", err)
	}
	return nil
}

// upsertCalorieGoal refreshes the existing calorie goal's observed intake, or
// creates an automatic goal when the user has none and intake was observed.
// The target is set once at creation; existing goals, automatic or not, keep
// theirs.
func (uc *SyncAutoGoalUseCase) upsertCalorieGoal(ctx context.Context, userID uuid.UUID, average float64, now time.Time) error {
	goal, err := uc.goalRepo.FindActiveByUserAndType(ctx, userID, entity.GoalTypeCalories)
	if err != nil {
		return fmt.Errorf("failed to load calorie goal: %w", err)
	}

	if goal == nil {
		if average <= 0 {
			return nil
		}
		target := math.Round(average * autoTargetFactor)
		created := entity.NewCalorieGoal(userID, average, target, now.AddDate(0, 1, 0), true)
		if err := uc.goalRepo.Create(ctx, created); err != nil {
			return fmt.Errorf("failed to create automatic calorie goal: %w", err)
		}
		return nil
	}

	goal.CurrentValue = average
	goal.Touch()
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return fmt.Errorf("failed to update calorie goal: %w", err)
	}
	return nil
}
