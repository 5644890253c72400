// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type         string         `gorm:"type:varchar(20);not null;index"`
	CurrentValue float64        `gorm:"type:decimal(10,1);not null"`
	TargetValue  float64        `gorm:"type:decimal(10,1);not null"`
	Unit         string         `gorm:"type:varchar(5)"` // weight goals only; may be empty on historical rows
	Deadline     time.Time      `gorm:"type:date"`
	Reason       string         `gorm:"type:varchar(100)"`
	ReasonDetail string         `gorm:"type:text"`
	IsAutomatic  bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.GoalType(m.Type),
		CurrentValue: m.CurrentValue,
		TargetValue:  m.TargetValue,
		Unit:         valueobject.WeightUnit(m.Unit),
		Deadline:     m.Deadline,
		Reason:       m.Reason,
		ReasonDetail: m.ReasonDetail,
		IsAutomatic:  m.IsAutomatic,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Type:         string(goal.Type),
		CurrentValue: goal.CurrentValue,
		TargetValue:  goal.TargetValue,
		Unit:         string(goal.Unit),
		Deadline:     goal.Deadline,
		Reason:       goal.Reason,
		ReasonDetail: goal.ReasonDetail,
		IsAutomatic:  goal.IsAutomatic,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
