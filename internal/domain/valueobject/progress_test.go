// Package valueobject defines domain value objects shared across features.
package valueobject

import "testing"

func TestRatioProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    int
	}{
		{"halfway", 1000, 2000, 50},
		{"exceeds target clamps to 100", 2500, 2000, 100},
		{"zero current", 0, 2000, 0},
		{"zero target", 500, 0, 0},
		{"rounds to nearest", 333, 1000, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatioProgress(tt.current, tt.target); got != tt.want {
				t.Errorf("RatioProgress(%v, %v) = %d, want %d", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestRatioStatus(t *testing.T) {
	if got := RatioStatus(2000, 2000); got != GoalStatusAchieved {
		t.Errorf("expected achieved, got %s", got)
	}
	if got := RatioStatus(1500, 2000); got != GoalStatusInProgress {
		t.Errorf("expected in_progress, got %s", got)
	}
}

func TestWeightProgress(t *testing.T) {
	t.Run("loss goal halfway", func(t *testing.T) {
		if got := WeightProgress(100, 80, 90); got != 50 {
			t.Errorf("expected 50, got %d", got)
		}
	})

	t.Run("loss goal moved backwards clamps to zero", func(t *testing.T) {
		if got := WeightProgress(100, 80, 105); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("loss goal past target clamps to 100", func(t *testing.T) {
		if got := WeightProgress(100, 80, 75); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("gain goal", func(t *testing.T) {
		if got := WeightProgress(60, 70, 65); got != 50 {
			t.Errorf("expected 50, got %d", got)
		}
	})

	t.Run("baseline equals target", func(t *testing.T) {
		if got := WeightProgress(70, 70, 70); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})
}

func TestWeightStatus(t *testing.T) {
	t.Run("no entries renders neutral", func(t *testing.T) {
		if got := WeightStatus(100, 80, 0, false); got != GoalStatusNeutral {
			t.Errorf("expected neutral, got %s", got)
		}
	})

	t.Run("loss goal moving down improves", func(t *testing.T) {
		if got := WeightStatus(100, 80, 95, true); got != GoalStatusImproving {
			t.Errorf("expected improving, got %s", got)
		}
	})

	t.Run("loss goal moving up regresses", func(t *testing.T) {
		if got := WeightStatus(100, 80, 103, true); got != GoalStatusRegressing {
			t.Errorf("expected regressing, got %s", got)
		}
	})

	t.Run("gain goal moving up improves", func(t *testing.T) {
		if got := WeightStatus(60, 70, 63, true); got != GoalStatusImproving {
			t.Errorf("expected improving, got %s", got)
		}
	})

	t.Run("unchanged weight regresses", func(t *testing.T) {
		if got := WeightStatus(100, 80, 100, true); got != GoalStatusRegressing {
			t.Errorf("expected regressing, got %s", got)
		}
	})
}
