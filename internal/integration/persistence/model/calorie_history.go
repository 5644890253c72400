package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// CalorieHistoryModel represents the calorie_history table in the database.
// One row per user per archived ISO week, enforced by the composite unique index.
type CalorieHistoryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_calorie_history_user_week"`
	WeekStart       time.Time `gorm:"type:date;not null;uniqueIndex:idx_calorie_history_user_week"`
	WeekEnd         time.Time `gorm:"type:date;not null"`
	TotalCalories   int       `gorm:"not null;default:0"`
	AverageCalories float64   `gorm:"type:decimal(8,1);not null;default:0"`
	DaysWithData    int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the CalorieHistoryModel.
func (CalorieHistoryModel) TableName() string {
	return "calorie_history"
}

// ToEntity converts a CalorieHistoryModel to a domain CalorieHistory entity.
func (m *CalorieHistoryModel) ToEntity() *entity.CalorieHistory {
	return &entity.CalorieHistory{
		ID:              m.ID,
		UserID:          m.UserID,
		WeekStart:       m.WeekStart,
		WeekEnd:         m.WeekEnd,
		TotalCalories:   m.TotalCalories,
		AverageCalories: m.AverageCalories,
		DaysWithData:    m.DaysWithData,
		CreatedAt:       m.CreatedAt,
	}
}

// CalorieHistoryFromEntity creates a CalorieHistoryModel from a domain entity.
func CalorieHistoryFromEntity(record *entity.CalorieHistory) *CalorieHistoryModel {
	return &CalorieHistoryModel{
		ID:              record.ID,
		UserID:          record.UserID,
		WeekStart:       record.WeekStart,
		WeekEnd:         record.WeekEnd,
		TotalCalories:   record.TotalCalories,
		AverageCalories: record.AverageCalories,
		DaysWithData:    record.DaysWithData,
		CreatedAt:       record.CreatedAt,
	}
}
