package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

// weightEntryRepository implements the adapter.WeightEntryRepository interface.
type weightEntryRepository struct {
	db *gorm.DB
}

// NewWeightEntryRepository creates a new weight entry repository instance.
func NewWeightEntryRepository(db *gorm.DB) adapter.WeightEntryRepository {
	return &weightEntryRepository{
		db: db,
	}
}

// Create creates a new weight entry in the database.
func (r *weightEntryRepository) Create(ctx context.Context, entry *entity.WeightEntry) error {
	entryModel := model.WeightEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a weight entry by its ID.
func (r *weightEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WeightEntry, error) {
	var entryModel model.WeightEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWeightEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByGoalID retrieves all entries for a goal, most recent date first.
func (r *weightEntryRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.WeightEntry, error) {
	var entryModels []model.WeightEntryModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.WeightEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindLatestByGoalID retrieves the entry with the most recent date for a
// goal, or nil when the goal has no entries.
func (r *weightEntryRepository) FindLatestByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.WeightEntry, error) {
	var entryModel model.WeightEntryModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC, created_at DESC").
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// Delete removes a weight entry from the database.
func (r *weightEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WeightEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
