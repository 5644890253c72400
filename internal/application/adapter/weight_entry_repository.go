// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// WeightEntryRepository defines the interface for weight entry persistence operations.
type WeightEntryRepository interface {
	// Create creates a new weight entry.
	Create(ctx context.Context, entry *entity.WeightEntry) error

	// FindByID retrieves a weight entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WeightEntry, error)

	// FindByGoalID retrieves all entries for a goal, most recent date first.
	FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.WeightEntry, error)

	// FindLatestByGoalID retrieves the entry with the most recent date for a
	// goal, or nil when the goal has no entries.
	FindLatestByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.WeightEntry, error)

	// Delete removes a weight entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
