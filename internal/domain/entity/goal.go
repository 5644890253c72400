// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// GoalType discriminates the kind of objective a goal tracks.
type GoalType string

const (
	GoalTypeWeight   GoalType = "weight"
	GoalTypeCalories GoalType = "calories"
	GoalTypeExercise GoalType = "exercise"
)

// IsValid checks whether the goal type is one of the supported types.
func (t GoalType) IsValid() bool {
	return t == GoalTypeWeight || t == GoalTypeCalories || t == GoalTypeExercise
}

// Goal represents a user's tracked objective. The Type field discriminates
// which fields are meaningful: Unit is set only for weight goals, and
// IsAutomatic only for calorie goals maintained from observed intake.
// Constructors enforce the per-type invariants, so a goal with a missing
// weight unit can only enter the system through historical data.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         GoalType
	CurrentValue float64
	TargetValue  float64
	Unit         valueobject.WeightUnit // weight goals only
	Deadline     time.Time
	Reason       string
	ReasonDetail string
	IsAutomatic  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewWeightGoal creates a weight goal. The unit defaults to kilograms when
// absent.
func NewWeightGoal(userID uuid.UUID, current, target float64, unit valueobject.WeightUnit, deadline time.Time, reason, reasonDetail string) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         GoalTypeWeight,
		CurrentValue: current,
		TargetValue:  target,
		Unit:         unit.OrDefault(),
		Deadline:     deadline,
		Reason:       reason,
		ReasonDetail: reasonDetail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewCalorieGoal creates a calorie goal. Calorie goals are ongoing; when no
// deadline is given it defaults to one year out, which is cosmetic.
func NewCalorieGoal(userID uuid.UUID, current, target float64, deadline time.Time, automatic bool) *Goal {
	now := time.Now().UTC()
	if deadline.IsZero() {
		deadline = now.AddDate(1, 0, 0)
	}
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         GoalTypeCalories,
		CurrentValue: current,
		TargetValue:  target,
		Deadline:     deadline,
		IsAutomatic:  automatic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewExerciseGoal creates an exercise goal tracking minutes of activity.
func NewExerciseGoal(userID uuid.UUID, current, target float64, deadline time.Time, reason, reasonDetail string) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         GoalTypeExercise,
		CurrentValue: current,
		TargetValue:  target,
		Deadline:     deadline,
		Reason:       reason,
		ReasonDetail: reasonDetail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// EffectiveUnit returns the goal's stored unit, defaulting missing units to
// kilograms. Only meaningful for weight goals.
func (g *Goal) EffectiveUnit() valueobject.WeightUnit {
	return g.Unit.OrDefault()
}

// Touch updates the modification timestamp.
func (g *Goal) Touch() {
	g.UpdatedAt = time.Now().UTC()
}
