// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations
// against the primary store. Writes always go to the primary store only;
// reads may be served by a GoalMirror when the primary is unavailable.
type GoalRepository interface {
	// Create creates a new goal in the store.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all non-deleted goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByUserAndType retrieves the most recent non-deleted goal of
	// the given type for a user, or nil when none exists.
	FindActiveByUserAndType(ctx context.Context, userID uuid.UUID, goalType entity.GoalType) (*entity.Goal, error)

	// Update updates an existing goal in the store.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete soft-deletes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalMirror is the secondary local goal store used as a read fallback when
// the primary store is unavailable. Successful primary reads refresh the
// mirror; the mirror is never written through directly by user actions.
type GoalMirror interface {
	// FindByUserID retrieves the mirrored goals for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// ReplaceAll replaces the mirrored goal set for a user.
	ReplaceAll(ctx context.Context, userID uuid.UUID, goals []*entity.Goal) error
}
