package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// AIMealSuggestionModel represents the ai_meal_suggestions table in the database.
type AIMealSuggestionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	MealType        string    `gorm:"type:varchar(20);not null"`
	CalorieTarget   int       `gorm:"not null;default:0"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Calories        int       `gorm:"not null;default:0"`
	ProteinGrams    float64   `gorm:"type:decimal(6,1);not null;default:0"`
	Ingredients     string    `gorm:"type:text"`
	Recipe          string    `gorm:"type:text"`
	PrepTimeMinutes int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the AIMealSuggestionModel.
func (AIMealSuggestionModel) TableName() string {
	return "ai_meal_suggestions"
}

// ToEntity converts an AIMealSuggestionModel to a domain AIMealSuggestion entity.
func (m *AIMealSuggestionModel) ToEntity() *entity.AIMealSuggestion {
	return &entity.AIMealSuggestion{
		ID:              m.ID,
		UserID:          m.UserID,
		MealType:        entity.MealType(m.MealType),
		CalorieTarget:   m.CalorieTarget,
		Name:            m.Name,
		Calories:        m.Calories,
		ProteinGrams:    m.ProteinGrams,
		Ingredients:     decodeStringList(m.Ingredients),
		Recipe:          m.Recipe,
		PrepTimeMinutes: m.PrepTimeMinutes,
		CreatedAt:       m.CreatedAt,
	}
}

// AIMealSuggestionFromEntity creates an AIMealSuggestionModel from a domain entity.
func AIMealSuggestionFromEntity(suggestion *entity.AIMealSuggestion) *AIMealSuggestionModel {
	return &AIMealSuggestionModel{
		ID:              suggestion.ID,
		UserID:          suggestion.UserID,
		MealType:        string(suggestion.MealType),
		CalorieTarget:   suggestion.CalorieTarget,
		Name:            suggestion.Name,
		Calories:        suggestion.Calories,
		ProteinGrams:    suggestion.ProteinGrams,
		Ingredients:     encodeStringList(suggestion.Ingredients),
		Recipe:          suggestion.Recipe,
		PrepTimeMinutes: suggestion.PrepTimeMinutes,
		CreatedAt:       suggestion.CreatedAt,
	}
}
