package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

// foodEntryRepository implements the adapter.FoodEntryRepository interface.
type foodEntryRepository struct {
	db *gorm.DB
}

// NewFoodEntryRepository creates a new food entry repository instance.
func NewFoodEntryRepository(db *gorm.DB) adapter.FoodEntryRepository {
	return &foodEntryRepository{
		db: db,
	}
}

// Create creates a new food entry in the database.
func (r *foodEntryRepository) Create(ctx context.Context, entry *entity.FoodEntry) error {
	entryModel := model.FoodEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a food entry by its ID.
func (r *foodEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodEntry, error) {
	var entryModel model.FoodEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFoodEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserID retrieves entries for a user, newest first, up to limit.
func (r *foodEntryRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FoodEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entryModels []model.FoodEntryModel
	result := query.Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.FoodEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByUserSince retrieves entries of the given type created at or after the
// since instant, newest first.
func (r *foodEntryRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, entryType entity.FoodEntryType, since time.Time) ([]*entity.FoodEntry, error) {
	var entryModels []model.FoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, string(entryType), since).
		Order("created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.FoodEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing food entry in the database.
func (r *foodEntryRepository) Update(ctx context.Context, entry *entity.FoodEntry) error {
	entryModel := model.FoodEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a food entry from the database.
func (r *foodEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FoodEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
