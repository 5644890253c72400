// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// FoodEntryRepository defines the interface for food entry persistence operations.
type FoodEntryRepository interface {
	// Create creates a new food entry.
	Create(ctx context.Context, entry *entity.FoodEntry) error

	// FindByID retrieves a food entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodEntry, error)

	// FindByUserID retrieves entries for a user, newest first, up to limit.
	// A non-positive limit returns all entries.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FoodEntry, error)

	// FindByUserSince retrieves entries of the given type created at or after
	// the since instant, newest first.
	FindByUserSince(ctx context.Context, userID uuid.UUID, entryType entity.FoodEntryType, since time.Time) ([]*entity.FoodEntry, error)

	// Update updates an existing food entry.
	Update(ctx context.Context, entry *entity.FoodEntry) error

	// Delete removes a food entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
