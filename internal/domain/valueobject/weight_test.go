// Package valueobject defines domain value objects shared across features.
package valueobject

import (
	"math"
	"testing"
)

func TestConvertWeight(t *testing.T) {
	t.Run("identity when units match", func(t *testing.T) {
		if got := ConvertWeight(82.4, WeightUnitKg, WeightUnitKg); got != 82.4 {
			t.Errorf("expected 82.4, got %v", got)
		}
	})

	t.Run("kg to lb rounds to one decimal", func(t *testing.T) {
		if got := ConvertWeight(100, WeightUnitKg, WeightUnitLb); got != 220.5 {
			t.Errorf("expected 220.5, got %v", got)
		}
	})

	t.Run("lb to kg", func(t *testing.T) {
		if got := ConvertWeight(220.5, WeightUnitLb, WeightUnitKg); got != 100.0 {
			t.Errorf("expected 100.0, got %v", got)
		}
	})

	t.Run("missing unit treated as kg", func(t *testing.T) {
		if got := ConvertWeight(100, "", WeightUnitLb); got != 220.5 {
			t.Errorf("expected 220.5, got %v", got)
		}
	})

	t.Run("round trip within tolerance", func(t *testing.T) {
		for x := 1.0; x <= 300; x += 0.7 {
			lb := ConvertWeight(x, WeightUnitKg, WeightUnitLb)
			back := ConvertWeight(lb, WeightUnitLb, WeightUnitKg)
			if math.Abs(back-x) > 0.1 {
				t.Fatalf("round trip of %v drifted to %v", x, back)
			}
		}
	})
}

func TestConvertWeightString(t *testing.T) {
	t.Run("formats with one decimal", func(t *testing.T) {
		if got := ConvertWeightString("100", WeightUnitKg, WeightUnitLb); got != "220.5" {
			t.Errorf("expected 220.5, got %q", got)
		}
	})

	t.Run("unparseable input returned unchanged", func(t *testing.T) {
		if got := ConvertWeightString("heavy", WeightUnitKg, WeightUnitLb); got != "heavy" {
			t.Errorf("expected input back, got %q", got)
		}
	})
}

func TestPlausibleRange(t *testing.T) {
	policy := DefaultPlausibleRange()

	t.Run("plausible values pass through", func(t *testing.T) {
		if got := policy.Clamp(80, WeightUnitKg); got != 80 {
			t.Errorf("expected 80, got %v", got)
		}
		if got := policy.Clamp(650, WeightUnitLb); got != 650 {
			t.Errorf("expected 650, got %v", got)
		}
	})

	t.Run("implausible kg clamps to reference", func(t *testing.T) {
		if got := policy.Clamp(1000, WeightUnitKg); got != policy.ReferenceKg {
			t.Errorf("expected %v, got %v", policy.ReferenceKg, got)
		}
	})

	t.Run("implausible lb clamps to reference", func(t *testing.T) {
		if got := policy.Clamp(1000, WeightUnitLb); got != policy.ReferenceLb {
			t.Errorf("expected %v, got %v", policy.ReferenceLb, got)
		}
	})

	t.Run("non positive values are implausible", func(t *testing.T) {
		if policy.IsPlausible(0, WeightUnitKg) {
			t.Error("expected zero weight to be implausible")
		}
		if policy.IsPlausible(-5, WeightUnitLb) {
			t.Error("expected negative weight to be implausible")
		}
	})

	t.Run("missing unit uses kg bounds", func(t *testing.T) {
		if got := policy.Clamp(400, ""); got != policy.ReferenceKg {
			t.Errorf("expected %v, got %v", policy.ReferenceKg, got)
		}
	})
}
