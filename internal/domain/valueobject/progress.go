// Package valueobject defines domain value objects shared across features.
package valueobject

import "math"

// GoalStatus is the semantic progress state a goal renders with.
// The UI maps these to colors: improving/achieved render green, regressing
// renders red, in_progress renders blue, and neutral renders gray.
type GoalStatus string

const (
	GoalStatusNeutral    GoalStatus = "neutral"
	GoalStatusImproving  GoalStatus = "improving"
	GoalStatusRegressing GoalStatus = "regressing"
	GoalStatusAchieved   GoalStatus = "achieved"
	GoalStatusInProgress GoalStatus = "in_progress"
)

// RatioProgress computes the 0-100 progress percentage for calorie and
// exercise goals, where progress is the plain ratio of current to target.
func RatioProgress(current, target float64) int {
	if target <= 0 {
		return 0
	}
	return clampPercent(math.Round(current / target * 100))
}

// RatioStatus returns the render state for calorie and exercise goals:
// achieved once the current value reaches the target, in progress otherwise.
func RatioStatus(current, target float64) GoalStatus {
	if current >= target {
		return GoalStatusAchieved
	}
	return GoalStatusInProgress
}

// WeightProgress computes the 0-100 progress percentage for a weight goal.
// Progress is distance traveled from the goal's original baseline toward the
// target, measured against the latest logged weight. Movement away from the
// target never yields negative progress; it clamps to zero.
func WeightProgress(baseline, target, latest float64) int {
	total := math.Abs(target - baseline)
	if total == 0 {
		return 100
	}

	var traveled float64
	if target < baseline {
		traveled = math.Max(0, baseline-latest)
	} else {
		traveled = math.Max(0, latest-baseline)
	}

	return clampPercent(math.Round(traveled / total * 100))
}

// WeightStatus returns the render state for a weight goal. Goals with no
// logged entries render neutral; otherwise the state reflects whether the
// latest entry moved in the goal's intended direction relative to the
// original baseline.
func WeightStatus(baseline, target, latest float64, hasEntries bool) GoalStatus {
	if !hasEntries {
		return GoalStatusNeutral
	}
	if target < baseline {
		if latest < baseline {
			return GoalStatusImproving
		}
		return GoalStatusRegressing
	}
	if latest > baseline {
		return GoalStatusImproving
	}
	return GoalStatusRegressing
}

func clampPercent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
