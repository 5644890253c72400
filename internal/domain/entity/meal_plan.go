// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies which meal of the day a plan entry covers.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// IsValid checks whether the meal type is supported.
func (t MealType) IsValid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealPlan is a planned meal for a given date, either entered manually or
// accepted from an AI suggestion.
type MealPlan struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            time.Time
	MealType        MealType
	Name            string
	Calories        int
	ProteinGrams    float64
	Ingredients     []string
	Recipe          string
	PrepTimeMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMealPlan creates a new meal plan entry.
func NewMealPlan(userID uuid.UUID, date time.Time, mealType MealType, name string, calories int, proteinGrams float64, ingredients []string, recipe string, prepTimeMinutes int) *MealPlan {
	now := time.Now().UTC()
	return &MealPlan{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            date,
		MealType:        mealType,
		Name:            name,
		Calories:        calories,
		ProteinGrams:    proteinGrams,
		Ingredients:     ingredients,
		Recipe:          recipe,
		PrepTimeMinutes: prepTimeMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AIMealSuggestion is a generated meal suggestion persisted for history and
// regeneration context.
type AIMealSuggestion struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	MealType        MealType
	CalorieTarget   int
	Name            string
	Calories        int
	ProteinGrams    float64
	Ingredients     []string
	Recipe          string
	PrepTimeMinutes int
	CreatedAt       time.Time
}

// NewAIMealSuggestion creates a persisted record of a generated suggestion.
func NewAIMealSuggestion(userID uuid.UUID, mealType MealType, calorieTarget, calories int, name string, proteinGrams float64, ingredients []string, recipe string, prepTimeMinutes int) *AIMealSuggestion {
	return &AIMealSuggestion{
		ID:              uuid.New(),
		UserID:          userID,
		MealType:        mealType,
		CalorieTarget:   calorieTarget,
		Name:            name,
		Calories:        calories,
		ProteinGrams:    proteinGrams,
		Ingredients:     ingredients,
		Recipe:          recipe,
		PrepTimeMinutes: prepTimeMinutes,
		CreatedAt:       time.Now().UTC(),
	}
}
