package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

// calorieHistoryRepository implements the adapter.CalorieHistoryRepository interface.
type calorieHistoryRepository struct {
	db *gorm.DB
}

// NewCalorieHistoryRepository creates a new calorie history repository instance.
func NewCalorieHistoryRepository(db *gorm.DB) adapter.CalorieHistoryRepository {
	return &calorieHistoryRepository{
		db: db,
	}
}

// Create persists an archived week record.
func (r *calorieHistoryRepository) Create(ctx context.Context, record *entity.CalorieHistory) error {
	recordModel := model.CalorieHistoryFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsForWeek checks whether a record already exists for the given user and
// week start date.
func (r *calorieHistoryRepository) ExistsForWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CalorieHistoryModel{}).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindByUserID retrieves archived weeks for a user, most recent first.
func (r *calorieHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CalorieHistory, error) {
	var recordModels []model.CalorieHistoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.CalorieHistory, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}
