package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

func newTestStore(t *testing.T) *RedisPreferenceStore {
	t.Helper()
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPreferenceStore(client)
}

func TestRedisPreferenceStore_DisplayUnit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults to kilograms when unset", func(t *testing.T) {
		store := newTestStore(t)

		unit, err := store.GetDisplayUnit(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unit != valueobject.WeightUnitKg {
			t.Errorf("expected kg default, got %s", unit)
		}
	})

	t.Run("round-trips the stored unit", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.SetDisplayUnit(ctx, userID, valueobject.WeightUnitLb); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		unit, err := store.GetDisplayUnit(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unit != valueobject.WeightUnitLb {
			t.Errorf("expected lb, got %s", unit)
		}
	})

	t.Run("is scoped per user", func(t *testing.T) {
		store := newTestStore(t)
		other := uuid.New()

		if err := store.SetDisplayUnit(ctx, userID, valueobject.WeightUnitLb); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		unit, err := store.GetDisplayUnit(ctx, other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unit != valueobject.WeightUnitKg {
			t.Errorf("expected other user to keep kg default, got %s", unit)
		}
	})
}

func TestRedisPreferenceStore_AutoGoalMarkers(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	t.Run("marker survives until set", func(t *testing.T) {
		store := newTestStore(t)

		ran, err := store.HasRun(ctx, userID, week)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ran {
			t.Error("expected no marker before MarkRun")
		}

		if err := store.MarkRun(ctx, userID, week); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ran, err = store.HasRun(ctx, userID, week)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ran {
			t.Error("expected marker after MarkRun")
		}
	})

	t.Run("markers are scoped per week", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.MarkRun(ctx, userID, week); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		nextWeek := week.AddDate(0, 0, 7)
		ran, err := store.HasRun(ctx, userID, nextWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ran {
			t.Error("next week's marker must be independent")
		}
	})
}
