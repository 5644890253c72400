// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalorieHistory is an archived weekly calorie summary, written once when an
// ISO week completes. It is a historical record of a past aggregate; live
// daily and weekly summaries are always recomputed from food entries and
// never read back from here.
type CalorieHistory struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	WeekStart       time.Time // Monday of the archived ISO week
	WeekEnd         time.Time
	TotalCalories   int
	AverageCalories float64 // average over days with entries
	DaysWithData    int
	CreatedAt       time.Time
}

// NewCalorieHistory creates an archived week record.
func NewCalorieHistory(userID uuid.UUID, weekStart, weekEnd time.Time, totalCalories int, averageCalories float64, daysWithData int) *CalorieHistory {
	return &CalorieHistory{
		ID:              uuid.New(),
		UserID:          userID,
		WeekStart:       weekStart,
		WeekEnd:         weekEnd,
		TotalCalories:   totalCalories,
		AverageCalories: averageCalories,
		DaysWithData:    daysWithData,
		CreatedAt:       time.Now().UTC(),
	}
}
