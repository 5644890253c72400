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

func TestCreateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	deadline := time.Now().AddDate(0, 6, 0)

	t.Run("creates weight goal defaulting unit to kg", func(t *testing.T) {
		repo := &fakeGoalRepo{}
		uc := NewCreateGoalUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         entity.GoalTypeWeight,
			CurrentValue: 90,
			TargetValue:  80,
			Deadline:     deadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Unit != valueobject.WeightUnitKg {
			t.Errorf("expected default unit kg, got %s", output.Goal.Unit)
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 create, got %d", len(repo.created))
		}
	})

	t.Run("clamps implausible weight values to the reference", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         entity.GoalTypeWeight,
			CurrentValue: 90000,
			TargetValue:  80,
			Unit:         valueobject.WeightUnitKg,
			Deadline:     deadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.CurrentValue != 70 {
			t.Errorf("expected clamped current value 70, got %.0f", output.Goal.CurrentValue)
		}
		if output.Goal.TargetValue != 80 {
			t.Errorf("plausible target must pass through, got %.0f", output.Goal.TargetValue)
		}
	})

	t.Run("uses pound ceiling for pound goals", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         entity.GoalTypeWeight,
			CurrentValue: 650, // over the 300 kg cap but plausible in pounds
			TargetValue:  180,
			Unit:         valueobject.WeightUnitLb,
			Deadline:     deadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.CurrentValue != 650 {
			t.Errorf("expected 650 lb to pass through, got %.0f", output.Goal.CurrentValue)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         "steps",
			CurrentValue: 1,
			TargetValue:  2,
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidGoalType {
			t.Fatalf("expected invalid type error, got %v", err)
		}
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         entity.GoalTypeCalories,
			CurrentValue: 0,
			TargetValue:  1800,
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidGoalValues {
			t.Fatalf("expected invalid values error, got %v", err)
		}
	})

	t.Run("rejects unsupported unit", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         entity.GoalTypeWeight,
			CurrentValue: 90,
			TargetValue:  80,
			Unit:         "stone",
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidWeightUnit {
			t.Fatalf("expected invalid unit error, got %v", err)
		}
	})

	t.Run("calorie goal without deadline defaults a year out", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Type:         entity.GoalTypeCalories,
			CurrentValue: 2000,
			TargetValue:  1800,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Deadline.Before(time.Now().AddDate(0, 11, 0)) {
			t.Errorf("expected deadline about a year out, got %v", output.Goal.Deadline)
		}
	})
}

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	deadline := time.Now().AddDate(0, 6, 0)

	t.Run("applies partial update", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, deadline, "health", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		target := 75.0
		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:      goal.ID,
			UserID:      userID,
			TargetValue: &target,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.TargetValue != 75 {
			t.Errorf("expected target 75, got %.0f", output.Goal.TargetValue)
		}
		if output.Goal.CurrentValue != 90 {
			t.Errorf("untouched field changed: current %.0f", output.Goal.CurrentValue)
		}
	})

	t.Run("rejects foreign goal", func(t *testing.T) {
		goal := entity.NewWeightGoal(uuid.New(), 90, 80, valueobject.WeightUnitKg, deadline, "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		value := 85.0
		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:       goal.ID,
			UserID:       userID,
			CurrentValue: &value,
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeUnauthorizedGoalAccess {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})

	t.Run("manual target edit releases automatic goal", func(t *testing.T) {
		goal := entity.NewCalorieGoal(userID, 2000, 1800, time.Time{}, true)
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		target := 1600.0
		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:      goal.ID,
			UserID:      userID,
			TargetValue: &target,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.IsAutomatic {
			t.Error("expected manual edit to clear the automatic flag")
		}
	})
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes owned goal", func(t *testing.T) {
		goal := entity.NewWeightGoal(userID, 90, 80, valueobject.WeightUnitKg, time.Now().AddDate(0, 6, 0), "", "")
		repo := &fakeGoalRepo{goals: []*entity.Goal{goal}}
		uc := NewDeleteGoalUseCase(repo)

		if err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: goal.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != goal.ID {
			t.Errorf("expected goal %s deleted, got %v", goal.ID, repo.deleted)
		}
	})

	t.Run("missing goal returns not found", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(&fakeGoalRepo{})

		err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: uuid.New(), UserID: userID})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
