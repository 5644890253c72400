package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

// goalMirror implements adapter.GoalMirror on a local SQLite database. It
// shares the goals model with the primary repository; only the connection
// differs. The mirror holds the last goal set each user successfully read
// from the primary and serves reads while the primary is down.
type goalMirror struct {
	db *gorm.DB
}

// NewGoalMirror creates a new goal mirror instance.
func NewGoalMirror(db *gorm.DB) adapter.GoalMirror {
	return &goalMirror{
		db: db,
	}
}

// FindByUserID retrieves the mirrored goals for a user.
func (r *goalMirror) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// ReplaceAll replaces the mirrored goal set for a user in one transaction,
// so a crash mid-refresh never leaves a half-empty mirror.
func (r *goalMirror) ReplaceAll(ctx context.Context, userID uuid.UUID, goals []*entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.GoalModel{}).Error; err != nil {
			return err
		}
		for _, g := range goals {
			if err := tx.Create(model.GoalFromEntity(g)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
