package dto

import (
	"time"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// CreateMealPlanRequest represents the request body for creating a meal plan.
type CreateMealPlanRequest struct {
	Date            string   `json:"date" binding:"required"`
	MealType        string   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Name            string   `json:"name" binding:"required,min=1,max=255"`
	Calories        int      `json:"calories" binding:"omitempty,gte=0"`
	ProteinGrams    float64  `json:"protein_grams" binding:"omitempty,gte=0"`
	Ingredients     []string `json:"ingredients"`
	Recipe          string   `json:"recipe"`
	PrepTimeMinutes int      `json:"prep_time_minutes" binding:"omitempty,gte=0"`
}

// UpdateMealPlanRequest represents the request body for updating a meal plan.
// All fields are optional; absent fields keep their current values.
type UpdateMealPlanRequest struct {
	Date            *string   `json:"date"`
	MealType        *string   `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Name            *string   `json:"name" binding:"omitempty,min=1,max=255"`
	Calories        *int      `json:"calories" binding:"omitempty,gte=0"`
	ProteinGrams    *float64  `json:"protein_grams" binding:"omitempty,gte=0"`
	Ingredients     *[]string `json:"ingredients"`
	Recipe          *string   `json:"recipe"`
	PrepTimeMinutes *int      `json:"prep_time_minutes" binding:"omitempty,gte=0"`
}

// GenerateSuggestionRequest represents the request body for generating an AI
// meal suggestion.
type GenerateSuggestionRequest struct {
	MealType      string   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Ingredients   []string `json:"ingredients"`
	CalorieTarget int      `json:"calorie_target" binding:"required,gt=0"`
}

// MealPlanResponse represents a meal plan in API responses.
type MealPlanResponse struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	MealType        string   `json:"meal_type"`
	Name            string   `json:"name"`
	Calories        int      `json:"calories"`
	ProteinGrams    float64  `json:"protein_grams"`
	Ingredients     []string `json:"ingredients"`
	Recipe          string   `json:"recipe,omitempty"`
	PrepTimeMinutes int      `json:"prep_time_minutes"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// MealPlanListResponse represents the response for listing meal plans.
type MealPlanListResponse struct {
	Plans []MealPlanResponse `json:"plans"`
}

// MealSuggestionResponse represents a generated meal suggestion.
type MealSuggestionResponse struct {
	ID              string   `json:"id"`
	MealType        string   `json:"meal_type"`
	CalorieTarget   int      `json:"calorie_target"`
	Name            string   `json:"name"`
	Calories        int      `json:"calories"`
	ProteinGrams    float64  `json:"protein_grams"`
	Ingredients     []string `json:"ingredients"`
	Recipe          string   `json:"recipe,omitempty"`
	PrepTimeMinutes int      `json:"prep_time_minutes"`
	CreatedAt       string   `json:"created_at"`
}

// ToMealPlanResponse converts a domain MealPlan to its response DTO.
func ToMealPlanResponse(p *entity.MealPlan) MealPlanResponse {
	return MealPlanResponse{
		ID:              p.ID.String(),
		Date:            p.Date.Format("2006-01-02"),
		MealType:        string(p.MealType),
		Name:            p.Name,
		Calories:        p.Calories,
		ProteinGrams:    p.ProteinGrams,
		Ingredients:     p.Ingredients,
		Recipe:          p.Recipe,
		PrepTimeMinutes: p.PrepTimeMinutes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToMealPlanListResponse converts a slice of meal plans to the list DTO.
func ToMealPlanListResponse(plans []*entity.MealPlan) MealPlanListResponse {
	responses := make([]MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, ToMealPlanResponse(plan))
	}
	return MealPlanListResponse{Plans: responses}
}

// ToMealSuggestionResponse converts a generated suggestion to its response DTO.
func ToMealSuggestionResponse(s *entity.AIMealSuggestion) MealSuggestionResponse {
	return MealSuggestionResponse{
		ID:              s.ID.String(),
		MealType:        string(s.MealType),
		CalorieTarget:   s.CalorieTarget,
		Name:            s.Name,
		Calories:        s.Calories,
		ProteinGrams:    s.ProteinGrams,
		Ingredients:     s.Ingredients,
		Recipe:          s.Recipe,
		PrepTimeMinutes: s.PrepTimeMinutes,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}
