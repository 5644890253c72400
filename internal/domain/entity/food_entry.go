// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FoodEntryType discriminates a logged meal from a refrigerator scan.
type FoodEntryType string

const (
	FoodEntryTypeFood         FoodEntryType = "food"
	FoodEntryTypeRefrigerator FoodEntryType = "refrigerator"
)

// IsValid checks whether the entry type is supported.
func (t FoodEntryType) IsValid() bool {
	return t == FoodEntryTypeFood || t == FoodEntryTypeRefrigerator
}

// FoodEntry is a logged meal or refrigerator scan. Entries are created after
// a successful vision analysis and are immutable except for the
// name-correction reanalysis flow. AnalysisData carries the full analysis
// response as an opaque JSON blob; only the promoted columns (name,
// calories, health score) are queried.
type FoodEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         FoodEntryType
	ImagePath    string
	FoodName     string
	Calories     int
	HealthScore  float64
	AnalysisData json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewFoodEntry creates a food entry from an analysis result.
func NewFoodEntry(userID uuid.UUID, entryType FoodEntryType, imagePath, foodName string, calories int, healthScore float64, analysisData json.RawMessage) *FoodEntry {
	now := time.Now().UTC()
	return &FoodEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         entryType,
		ImagePath:    imagePath,
		FoodName:     foodName,
		Calories:     calories,
		HealthScore:  healthScore,
		AnalysisData: analysisData,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyReanalysis replaces the analysis-derived fields after a
// name-correction reanalysis.
func (e *FoodEntry) ApplyReanalysis(foodName string, calories int, healthScore float64, analysisData json.RawMessage) {
	e.FoodName = foodName
	e.Calories = calories
	e.HealthScore = healthScore
	e.AnalysisData = analysisData
	e.UpdatedAt = time.Now().UTC()
}
