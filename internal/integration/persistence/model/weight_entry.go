package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// WeightEntryModel represents the weight_entries table in the database.
type WeightEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	Weight    float64   `gorm:"type:decimal(10,1);not null"`
	Unit      string    `gorm:"type:varchar(5);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the WeightEntryModel.
func (WeightEntryModel) TableName() string {
	return "weight_entries"
}

// ToEntity converts a WeightEntryModel to a domain WeightEntry entity.
func (m *WeightEntryModel) ToEntity() *entity.WeightEntry {
	return &entity.WeightEntry{
		ID:        m.ID,
		GoalID:    m.GoalID,
		Date:      m.Date,
		Weight:    m.Weight,
		Unit:      valueobject.WeightUnit(m.Unit),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// WeightEntryFromEntity creates a WeightEntryModel from a domain WeightEntry entity.
func WeightEntryFromEntity(entry *entity.WeightEntry) *WeightEntryModel {
	return &WeightEntryModel{
		ID:        entry.ID,
		GoalID:    entry.GoalID,
		Date:      entry.Date,
		Weight:    entry.Weight,
		Unit:      string(entry.Unit),
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	}
}
