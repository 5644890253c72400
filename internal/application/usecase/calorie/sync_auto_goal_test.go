package calorie

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

func newSyncUseCase(foods *fakeFoodEntryRepo, goals *fakeGoalRepo, history *fakeHistoryRepo, markers *fakeMarkerStore) *SyncAutoGoalUseCase {
	uc := NewSyncAutoGoalUseCase(foods, goals, history, markers)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestSyncAutoGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("creates automatic goal from trailing average", func(t *testing.T) {
		// Two days with data: (2400+2000)/2 = 2200.
		foods := &fakeFoodEntryRepo{entries: []*entity.FoodEntry{
			foodEntryAt(userID, 2400, fixedNow.Add(-time.Hour)),
			foodEntryAt(userID, 2000, fixedNow.AddDate(0, 0, -1)),
		}}
		goals := &fakeGoalRepo{}

		err := newSyncUseCase(foods, goals, &fakeHistoryRepo{}, newFakeMarkerStore()).
			Execute(context.Background(), SyncAutoGoalInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(goals.created) != 1 {
			t.Fatalf("expected 1 created goal, got %d", len(goals.created))
		}
		created := goals.created[0]
		if created.CurrentValue != 2200 {
			t.Errorf("expected current value 2200, got %.0f", created.CurrentValue)
		}
		if created.TargetValue != 1980 {
			t.Errorf("expected target 1980 (90%% of 2200), got %.0f", created.TargetValue)
		}
		if !created.IsAutomatic {
			t.Error("expected automatic goal")
		}
		if created.Deadline.Before(fixedNow.AddDate(0, 0, 27)) {
			t.Errorf("expected deadline about a month out, got %v", created.Deadline)
		}
	})

	t.Run("refreshes manual goal intake without touching its target", func(t *testing.T) {
		manual := entity.NewCalorieGoal(userID, 1500, 1700, time.Time{}, false)
		goals := &fakeGoalRepo{goals: []*entity.Goal{manual}}
		foods := &fakeFoodEntryRepo{entries: []*entity.FoodEntry{
			foodEntryAt(userID, 2100, fixedNow.Add(-time.Hour)),
		}}

		err := newSyncUseCase(foods, goals, &fakeHistoryRepo{}, newFakeMarkerStore()).
			Execute(context.Background(), SyncAutoGoalInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(goals.updated) != 1 {
			t.Fatalf("expected 1 updated goal, got %d", len(goals.updated))
		}
		if manual.CurrentValue != 2100 {
			t.Errorf("expected current value 2100, got %.0f", manual.CurrentValue)
		}
		if manual.TargetValue != 1700 {
			t.Errorf("manual target must stay 1700, got %.0f", manual.TargetValue)
		}
	})

	t.Run("automatic goal keeps its target when intake rises", func(t *testing.T) {
		auto := entity.NewCalorieGoal(userID, 2000, 1800, time.Time{}, true)
		goals := &fakeGoalRepo{goals: []*entity.Goal{auto}}
		foods := &fakeFoodEntryRepo{entries: []*entity.FoodEntry{
			foodEntryAt(userID, 2600, fixedNow.Add(-time.Hour)),
		}}

		err := newSyncUseCase(foods, goals, &fakeHistoryRepo{}, newFakeMarkerStore()).
			Execute(context.Background(), SyncAutoGoalInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if auto.CurrentValue != 2600 {
			t.Errorf("expected current value 2600, got %.0f", auto.CurrentValue)
		}
		if auto.TargetValue != 1800 {
			t.Errorf("target must stay 1800, got %.0f", auto.TargetValue)
		}
	})

	t.Run("creates no goal when the observed average is zero", func(t *testing.T) {
		foods := &fakeFoodEntryRepo{entries: []*entity.FoodEntry{
			foodEntryAt(userID, 0, fixedNow.Add(-time.Hour)),
			foodEntryAt(userID, 0, fixedNow.AddDate(0, 0, -1)),
		}}
		goals := &fakeGoalRepo{}

		err := newSyncUseCase(foods, goals, &fakeHistoryRepo{}, newFakeMarkerStore()).
			Execute(context.Background(), SyncAutoGoalInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(goals.created) != 0 {
			t.Errorf("expected no goal from zero intake, got %d", len(goals.created))
		}
	})

	t.Run("runs once per week", func(t *testing.T) {
		foods := &fakeFoodEntryRepo{entries: []*entity.FoodEntry{
			foodEntryAt(userID, 2000, fixedNow.Add(-time.Hour)),
		}}
		goals := &fakeGoalRepo{}
		markers := newFakeMarkerStore()
		uc := newSyncUseCase(foods, goals, &fakeHistoryRepo{}, markers)

		for i := 0; i < 3; i++ {
			if err := uc.Execute(context.Background(), SyncAutoGoalInput{UserID: userID}); err != nil {
				t.Fatalf("run %d: unexpected error: %v", i, err)
			}
		}

		if len(goals.created)+len(goals.updated) != 1 {
			t.Errorf("expected exactly 1 goal write across runs, got %d creates and %d updates", len(goals.created), len(goals.updated))
		}
	})

	t.Run("leaves marker unset when no intake was logged", func(t *testing.T) {
		goals := &fakeGoalRepo{}
		markers := newFakeMarkerStore()

		err := newSyncUseCase(&fakeFoodEntryRepo{}, goals, &fakeHistoryRepo{}, markers).
			Execute(context.Background(), SyncAutoGoalInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(goals.created) != 0 {
			t.Errorf("expected no goal without data, got %d", len(goals.created))
		}
		if len(markers.runs) != 0 {
			t.Error("marker must stay unset so a later log this week still syncs")
		}
	})

	t.Run("archives the completed previous week once", func(t *testing.T) {
		prevWeekDay := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC) // Thursday of previous week
		foods := &fakeFoodEntryRepo{entries: []*entity.FoodEntry{
			foodEntryAt(userID, 1800, prevWeekDay),
			foodEntryAt(userID, 1600, prevWeekDay.AddDate(0, 0, 1)),
			foodEntryAt(userID, 2000, fixedNow.Add(-time.Hour)),
		}}
		history := &fakeHistoryRepo{}
		markers := newFakeMarkerStore()
		uc := newSyncUseCase(foods, &fakeGoalRepo{}, history, markers)

		if err := uc.Execute(context.Background(), SyncAutoGoalInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(history.records) != 1 {
			t.Fatalf("expected 1 archived week, got %d", len(history.records))
		}
		record := history.records[0]
		if !record.WeekStart.Equal(time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected archived week start 2026-08-17, got %v", record.WeekStart)
		}
		if record.TotalCalories != 3400 {
			t.Errorf("expected archived total 3400, got %d", record.TotalCalories)
		}
		if record.DaysWithData != 2 {
			t.Errorf("expected 2 days with data, got %d", record.DaysWithData)
		}
		if record.AverageCalories != 1700 {
			t.Errorf("expected archived average 1700, got %.1f", record.AverageCalories)
		}

		// A second sync (marker cleared) must not duplicate the archive.
		markers.runs = map[string]bool{}
		if err := uc.Execute(context.Background(), SyncAutoGoalInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history.records) != 1 {
			t.Errorf("expected archive to stay at 1 record, got %d", len(history.records))
		}
	})
}
