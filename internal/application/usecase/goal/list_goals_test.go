package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

func TestListGoalsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	deadline := time.Now().AddDate(0, 6, 0)

	t.Run("computes weight progress from latest entry", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		entries := &fakeWeightEntryRepo{entries: []*entity.WeightEntry{
			weightEntryOn(goal.ID, time.Now().AddDate(0, 0, -2), 88, valueobject.WeightUnitKg),
			weightEntryOn(goal.ID, time.Now().AddDate(0, 0, -1), 85, valueobject.WeightUnitKg),
		}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, entries, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.Goals[0]
		if view.Progress != 50 {
			t.Errorf("expected 50%% progress (5 of 10 kg), got %d%%", view.Progress)
		}
		if view.Status != valueobject.GoalStatusImproving {
			t.Errorf("expected improving status, got %s", view.Status)
		}
		if view.LatestWeight == nil || *view.LatestWeight != 85 {
			t.Errorf("expected latest weight 85, got %v", view.LatestWeight)
		}
	})

	t.Run("renders neutral with no entries", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.Goals[0]
		if view.Status != valueobject.GoalStatusNeutral {
			t.Errorf("expected neutral status, got %s", view.Status)
		}
		if view.Progress != 0 {
			t.Errorf("expected 0%% progress, got %d%%", view.Progress)
		}
	})

	t.Run("clamps progress when weight moved away from target", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		entries := &fakeWeightEntryRepo{entries: []*entity.WeightEntry{
			weightEntryOn(goal.ID, time.Now(), 95, valueobject.WeightUnitKg),
		}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, entries, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.Goals[0]
		if view.Progress != 0 {
			t.Errorf("expected progress clamped to 0, got %d", view.Progress)
		}
		if view.Status != valueobject.GoalStatusRegressing {
			t.Errorf("expected regressing status, got %s", view.Status)
		}
	})

	t.Run("converts entry units to the goal's unit before comparing", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		entries := &fakeWeightEntryRepo{entries: []*entity.WeightEntry{
			// 187.4 lb is exactly 85.0 kg after one-decimal rounding.
			weightEntryOn(goal.ID, time.Now(), 187.4, valueobject.WeightUnitLb),
		}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, entries, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.Goals[0]
		if view.LatestWeight == nil || *view.LatestWeight != 85 {
			t.Errorf("expected latest weight 85 kg, got %v", view.LatestWeight)
		}
		if view.Progress != 50 {
			t.Errorf("expected 50%% progress, got %d%%", view.Progress)
		}
	})

	t.Run("falls back to mirror when primary store fails", func(t *testing.T) {
		mirrored := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{findErr: errors.New("connection refused")}
		mirror := &fakeGoalMirror{goals: []*entity.Goal{mirrored}}

		uc := NewListGoalsUseCase(repo, mirror, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Degraded {
			t.Error("expected degraded output")
		}
		if len(output.Goals) != 1 {
			t.Fatalf("expected 1 mirrored goal, got %d", len(output.Goals))
		}
	})

	t.Run("returns coded error when both stores fail", func(t *testing.T) {
		repo := &fakeGoalRepo{findErr: errors.New("connection refused")}
		mirror := &fakeGoalMirror{findErr: errors.New("disk error")}

		uc := NewListGoalsUseCase(repo, mirror, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		_, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) {
			t.Fatalf("expected GoalError, got %v", err)
		}
		if goalErr.Code != domainerror.ErrCodeGoalStoreUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalStoreUnavailable, goalErr.Code)
		}
	})

	t.Run("successful primary read refreshes the mirror", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		mirror := &fakeGoalMirror{}

		uc := NewListGoalsUseCase(repo, mirror, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		if _, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(mirror.replaced) != 1 {
			t.Fatalf("expected 1 mirror refresh, got %d", len(mirror.replaced))
		}
	})

	t.Run("heals implausible weight goal on load", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		goal.CurrentValue = 90000 // grams entered as kilograms
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goals[0].Goal.CurrentValue != 70 {
			t.Errorf("expected healed current value 70, got %.0f", output.Goals[0].Goal.CurrentValue)
		}
		if len(repo.updated) != 1 {
			t.Errorf("expected the healed goal to be written back, got %d updates", len(repo.updated))
		}
	})

	t.Run("heals missing unit to kilograms", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		goal.Unit = "" // historical record
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goals[0].Goal.Unit != valueobject.WeightUnitKg {
			t.Errorf("expected healed unit kg, got %q", output.Goals[0].Goal.Unit)
		}
		if len(repo.updated) != 1 {
			t.Errorf("expected the healed goal to be written back, got %d updates", len(repo.updated))
		}
	})

	t.Run("skips heal writes while degraded", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		goal.CurrentValue = 5000
		repo := &fakeGoalRepo{findErr: errors.New("connection refused")}
		mirror := &fakeGoalMirror{goals: []*entity.Goal{goal}}

		uc := NewListGoalsUseCase(repo, mirror, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goals[0].Goal.CurrentValue != 70 {
			t.Errorf("expected healed value served, got %.0f", output.Goals[0].Goal.CurrentValue)
		}
		if len(repo.updated) != 0 {
			t.Errorf("expected no primary writes while degraded, got %d", len(repo.updated))
		}
	})

	t.Run("converts display values without rewriting stored ones", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 100, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		prefs := newFakePreferenceStore()
		prefs.units[userID] = valueobject.WeightUnitLb

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, &fakeWeightEntryRepo{}, prefs)
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.Goals[0]
		if view.DisplayUnit != valueobject.WeightUnitLb {
			t.Errorf("expected display unit lb, got %s", view.DisplayUnit)
		}
		if view.DisplayCurrentValue != 220.5 {
			t.Errorf("expected display current 220.5 lb, got %.1f", view.DisplayCurrentValue)
		}
		if goal.CurrentValue != 100 || goal.Unit != valueobject.WeightUnitKg {
			t.Error("stored goal must keep its kg values")
		}
	})

	t.Run("request override beats stored preference", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 100, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		prefs := newFakePreferenceStore()
		prefs.units[userID] = valueobject.WeightUnitLb

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, &fakeWeightEntryRepo{}, prefs)
		output, err := uc.Execute(context.Background(), ListGoalsInput{
			UserID:      userID,
			DisplayUnit: valueobject.WeightUnitKg,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goals[0].DisplayUnit != valueobject.WeightUnitKg {
			t.Errorf("expected kg override, got %s", output.Goals[0].DisplayUnit)
		}
	})

	t.Run("calorie goal uses ratio progress", func(t *testing.T) {
		goal := entity.NewCalorieGoal(userID, 900, 1800, time.Time{}, false)
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}

		uc := NewListGoalsUseCase(repo, &fakeGoalMirror{}, &fakeWeightEntryRepo{}, newFakePreferenceStore())
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.Goals[0]
		if view.Progress != 50 {
			t.Errorf("expected 50%% ratio progress, got %d%%", view.Progress)
		}
		if view.Status != valueobject.GoalStatusInProgress {
			t.Errorf("expected in_progress status, got %s", view.Status)
		}
	})
}
