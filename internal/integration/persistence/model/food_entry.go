package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// FoodEntryModel represents the food_entries table in the database.
// AnalysisData holds the raw analysis response; it is stored opaque and only
// the promoted columns are queried.
type FoodEntryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         string    `gorm:"type:varchar(20);not null;index"`
	ImagePath    string    `gorm:"type:text"`
	FoodName     string    `gorm:"type:varchar(255);not null"`
	Calories     int       `gorm:"not null;default:0"`
	HealthScore  float64   `gorm:"type:decimal(4,1);not null;default:0"`
	AnalysisData []byte    `gorm:"type:jsonb"`
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the FoodEntryModel.
func (FoodEntryModel) TableName() string {
	return "food_entries"
}

// ToEntity converts a FoodEntryModel to a domain FoodEntry entity.
func (m *FoodEntryModel) ToEntity() *entity.FoodEntry {
	return &entity.FoodEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.FoodEntryType(m.Type),
		ImagePath:    m.ImagePath,
		FoodName:     m.FoodName,
		Calories:     m.Calories,
		HealthScore:  m.HealthScore,
		AnalysisData: json.RawMessage(m.AnalysisData),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FoodEntryFromEntity creates a FoodEntryModel from a domain FoodEntry entity.
func FoodEntryFromEntity(entry *entity.FoodEntry) *FoodEntryModel {
	return &FoodEntryModel{
		ID:           entry.ID,
		UserID:       entry.UserID,
		Type:         string(entry.Type),
		ImagePath:    entry.ImagePath,
		FoodName:     entry.FoodName,
		Calories:     entry.Calories,
		HealthScore:  entry.HealthScore,
		AnalysisData: []byte(entry.AnalysisData),
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}
