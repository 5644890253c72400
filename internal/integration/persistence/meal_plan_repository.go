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

// mealPlanRepository implements the adapter.MealPlanRepository interface.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository instance.
func NewMealPlanRepository(db *gorm.DB) adapter.MealPlanRepository {
	return &mealPlanRepository{
		db: db,
	}
}

// Create creates a new meal plan in the database.
func (r *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	planModel := model.MealPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a meal plan by its ID.
func (r *mealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	var planModel model.MealPlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMealPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindByUserID retrieves all meal plans for a user, by date ascending.
func (r *mealPlanRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	var planModels []model.MealPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.MealPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// Update updates an existing meal plan in the database.
func (r *mealPlanRepository) Update(ctx context.Context, plan *entity.MealPlan) error {
	planModel := model.MealPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Save(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a meal plan from the database.
func (r *mealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MealPlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// aiMealSuggestionRepository implements the adapter.AIMealSuggestionRepository interface.
type aiMealSuggestionRepository struct {
	db *gorm.DB
}

// NewAIMealSuggestionRepository creates a new AI meal suggestion repository instance.
func NewAIMealSuggestionRepository(db *gorm.DB) adapter.AIMealSuggestionRepository {
	return &aiMealSuggestionRepository{
		db: db,
	}
}

// Create persists a generated suggestion.
func (r *aiMealSuggestionRepository) Create(ctx context.Context, suggestion *entity.AIMealSuggestion) error {
	suggestionModel := model.AIMealSuggestionFromEntity(suggestion)
	result := r.db.WithContext(ctx).Create(suggestionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves recent suggestions for a user, newest first.
func (r *aiMealSuggestionRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AIMealSuggestion, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var suggestionModels []model.AIMealSuggestionModel
	result := query.Find(&suggestionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suggestions := make([]*entity.AIMealSuggestion, len(suggestionModels))
	for i, sm := range suggestionModels {
		suggestions[i] = sm.ToEntity()
	}
	return suggestions, nil
}
