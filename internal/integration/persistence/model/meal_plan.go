package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// MealPlanModel represents the meal_plans table in the database.
// Ingredients are stored as a JSON array in a text column.
type MealPlanModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Date            time.Time `gorm:"type:date;not null;index"`
	MealType        string    `gorm:"type:varchar(20);not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Calories        int       `gorm:"not null;default:0"`
	ProteinGrams    float64   `gorm:"type:decimal(6,1);not null;default:0"`
	Ingredients     string    `gorm:"type:text"`
	Recipe          string    `gorm:"type:text"`
	PrepTimeMinutes int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the MealPlanModel.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// ToEntity converts a MealPlanModel to a domain MealPlan entity.
func (m *MealPlanModel) ToEntity() *entity.MealPlan {
	return &entity.MealPlan{
		ID:              m.ID,
		UserID:          m.UserID,
		Date:            m.Date,
		MealType:        entity.MealType(m.MealType),
		Name:            m.Name,
		Calories:        m.Calories,
		ProteinGrams:    m.ProteinGrams,
		Ingredients:     decodeStringList(m.Ingredients),
		Recipe:          m.Recipe,
		PrepTimeMinutes: m.PrepTimeMinutes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// MealPlanFromEntity creates a MealPlanModel from a domain MealPlan entity.
func MealPlanFromEntity(plan *entity.MealPlan) *MealPlanModel {
	return &MealPlanModel{
		ID:              plan.ID,
		UserID:          plan.UserID,
		Date:            plan.Date,
		MealType:        string(plan.MealType),
		Name:            plan.Name,
		Calories:        plan.Calories,
		ProteinGrams:    plan.ProteinGrams,
		Ingredients:     encodeStringList(plan.Ingredients),
		Recipe:          plan.Recipe,
		PrepTimeMinutes: plan.PrepTimeMinutes,
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	}
}

func encodeStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		slog.Warn("Failed to encode string list", "error", err)
		return "[]"
	}
	return string(encoded)
}

func decodeStringList(encoded string) []string {
	if encoded == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		slog.Warn("Failed to decode string list", "error", err)
		return nil
	}
	return values
}
