package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// markerTTL keeps auto goal markers around long enough to cover their week
// plus slack; expired markers only cost one redundant sync.
const markerTTL = 21 * 24 * time.Hour

// RedisPreferenceStore implements the PreferenceStore and AutoGoalMarkerStore
// interfaces on Redis. Both are soft state: losing a key degrades to a
// default or a redundant write, never to data loss.
type RedisPreferenceStore struct {
	client *redis.Client
}

// NewRedisPreferenceStore creates a new Redis-backed preference store.
func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{
		client: client,
	}
}

// GetDisplayUnit returns the user's preferred display unit, defaulting to
// kilograms when no preference has been stored.
func (s *RedisPreferenceStore) GetDisplayUnit(ctx context.Context, userID uuid.UUID) (valueobject.WeightUnit, error) {
	value, err := s.client.Get(ctx, displayUnitKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return valueobject.WeightUnitKg, nil
		}
		return "", fmt.Errorf("failed to read display unit: %w", err)
	}

	unit := valueobject.WeightUnit(value)
	if !unit.IsValid() {
		return valueobject.WeightUnitKg, nil
	}
	return unit, nil
}

// SetDisplayUnit stores the user's preferred display unit. Preferences do
// not expire.
func (s *RedisPreferenceStore) SetDisplayUnit(ctx context.Context, userID uuid.UUID, unit valueobject.WeightUnit) error {
	if err := s.client.Set(ctx, displayUnitKey(userID), string(unit), 0).Err(); err != nil {
		return fmt.Errorf("failed to store display unit: %w", err)
	}
	return nil
}

// HasRun reports whether the auto goal sync already ran for the week
// starting at weekStart.
func (s *RedisPreferenceStore) HasRun(ctx context.Context, userID uuid.UUID, weekStart time.Time) (bool, error) {
	count, err := s.client.Exists(ctx, autoGoalMarkerKey(userID, weekStart)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to read auto goal marker: %w", err)
	}
	return count > 0, nil
}

// MarkRun records that the auto goal sync ran for the week starting at
// weekStart.
func (s *RedisPreferenceStore) MarkRun(ctx context.Context, userID uuid.UUID, weekStart time.Time) error {
	if err := s.client.Set(ctx, autoGoalMarkerKey(userID, weekStart), "1", markerTTL).Err(); err != nil {
		return fmt.Errorf("failed to write auto goal marker: %w", err)
	}
	return nil
}

func displayUnitKey(userID uuid.UUID) string {
	return "prefs:display_unit:" + userID.String()
}

func autoGoalMarkerKey(userID uuid.UUID, weekStart time.Time) string {
	return "auto_goal:synced:" + userID.String() + ":" + weekStart.Format("2006-01-02")
}
