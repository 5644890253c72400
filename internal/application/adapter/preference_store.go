// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// PreferenceStore holds per-user display preferences. The display unit is
// deliberately independent of any goal's stored unit: toggling it changes
// rendering only and never rewrites persisted goal values.
type PreferenceStore interface {
	// GetDisplayUnit returns the user's preferred display unit, defaulting
	// to kilograms when no preference has been stored.
	GetDisplayUnit(ctx context.Context, userID uuid.UUID) (valueobject.WeightUnit, error)

	// SetDisplayUnit stores the user's preferred display unit.
	SetDisplayUnit(ctx context.Context, userID uuid.UUID, unit valueobject.WeightUnit) error
}

// AutoGoalMarkerStore tracks which ISO week the automatic calorie goal was
// last synchronized for, per user. The marker replaces an in-memory
// once-per-session flag so the guard survives process restarts; losing a
// marker is harmless (it only causes one redundant write).
type AutoGoalMarkerStore interface {
	// HasRun reports whether the auto goal sync already ran for the week
	// starting at weekStart.
	HasRun(ctx context.Context, userID uuid.UUID, weekStart time.Time) (bool, error)

	// MarkRun records that the auto goal sync ran for the week starting at
	// weekStart.
	MarkRun(ctx context.Context, userID uuid.UUID, weekStart time.Time) error
}
