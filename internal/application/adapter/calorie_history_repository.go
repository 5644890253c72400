// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// CalorieHistoryRepository defines the interface for archived weekly calorie records.
type CalorieHistoryRepository interface {
	// Create persists an archived week record.
	Create(ctx context.Context, record *entity.CalorieHistory) error

	// ExistsForWeek checks whether a record already exists for the given
	// user and week start date.
	ExistsForWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (bool, error)

	// FindByUserID retrieves archived weeks for a user, most recent first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CalorieHistory, error)
}
