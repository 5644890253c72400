// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// WeightEntry is a dated weight measurement linked to a weight goal.
// Entries are only ever created by explicit user action and are deleted
// individually; nothing in the system generates them automatically.
type WeightEntry struct {
	ID        uuid.UUID
	GoalID    uuid.UUID
	Date      time.Time
	Weight    float64
	Unit      valueobject.WeightUnit
	Notes     string
	CreatedAt time.Time
}

// NewWeightEntry creates a new weight entry for a goal.
func NewWeightEntry(goalID uuid.UUID, date time.Time, weight float64, unit valueobject.WeightUnit, notes string) *WeightEntry {
	return &WeightEntry{
		ID:        uuid.New(),
		GoalID:    goalID,
		Date:      date,
		Weight:    weight,
		Unit:      unit.OrDefault(),
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
}
