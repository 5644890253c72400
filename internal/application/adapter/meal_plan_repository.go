// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// MealPlanRepository defines the interface for meal plan persistence operations.
type MealPlanRepository interface {
	// Create creates a new meal plan.
	Create(ctx context.Context, plan *entity.MealPlan) error

	// FindByID retrieves a meal plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error)

	// FindByUserID retrieves all meal plans for a user, by date ascending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)

	// Update updates an existing meal plan.
	Update(ctx context.Context, plan *entity.MealPlan) error

	// Delete removes a meal plan.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AIMealSuggestionRepository defines the interface for persisted AI meal suggestions.
type AIMealSuggestionRepository interface {
	// Create persists a generated suggestion.
	Create(ctx context.Context, suggestion *entity.AIMealSuggestion) error

	// FindByUserID retrieves recent suggestions for a user, newest first, up
	// to limit. A non-positive limit returns all suggestions.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AIMealSuggestion, error)
}
