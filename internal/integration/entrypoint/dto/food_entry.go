package dto

import (
	"encoding/json"
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// AnalyzeFoodRequest represents the request body for logging a meal photo.
// The image arrives as a base64 data URL.
type AnalyzeFoodRequest struct {
	Image string `json:"image" binding:"required"`
}

// ReanalyzeFoodRequest represents the request body for re-running the
// analysis with a corrected food name.
type ReanalyzeFoodRequest struct {
	FoodName string `json:"food_name" binding:"required,min=1,max=255"`
}

// FoodAnalysisResponse represents the nutritional analysis of a meal photo.
type FoodAnalysisResponse struct {
	FoodName    string   `json:"food_name"`
	Calories    int      `json:"calories"`
	HealthScore float64  `json:"health_score"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	FiberG      float64  `json:"fiber_g"`
	SugarsG     float64  `json:"sugars_g"`
	PortionSize string   `json:"portion_size"`
	Benefits    string   `json:"benefits,omitempty"`
	Concerns    string   `json:"concerns,omitempty"`
	Items       []string `json:"items,omitempty"`
}

// RefrigeratorItemResponse represents one recognized item in a refrigerator scan.
type RefrigeratorItemResponse struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

// SuggestedRecipeResponse represents a recipe suggested from scanned contents.
type SuggestedRecipeResponse struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Recipe      string   `json:"recipe"`
	TimeMinutes int      `json:"time_minutes"`
}

// RefrigeratorAnalysisResponse represents the analysis of a refrigerator scan.
type RefrigeratorAnalysisResponse struct {
	Items                   []RefrigeratorItemResponse `json:"items"`
	ExpiringItems           []string                   `json:"expiring_items,omitempty"`
	SuggestedRecipes        []SuggestedRecipeResponse  `json:"suggested_recipes,omitempty"`
	InventorySummary        string                     `json:"inventory_summary,omitempty"`
	FoodGroups              []string                   `json:"food_groups,omitempty"`
	ShoppingRecommendations []string                   `json:"shopping_recommendations,omitempty"`
}

// FoodEntryResponse represents a logged food entry in API responses.
type FoodEntryResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	FoodName     string          `json:"food_name"`
	Calories     int             `json:"calories"`
	HealthScore  float64         `json:"health_score"`
	AnalysisData json.RawMessage `json:"analysis_data,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// AnalyzeFoodResponse represents the response for logging a meal photo.
type AnalyzeFoodResponse struct {
	Entry    FoodEntryResponse    `json:"entry"`
	Analysis FoodAnalysisResponse `json:"analysis"`
}

// RefrigeratorScanResponse represents the response for a refrigerator scan.
type RefrigeratorScanResponse struct {
	Entry    FoodEntryResponse            `json:"entry"`
	Analysis RefrigeratorAnalysisResponse `json:"analysis"`
}

// FoodEntryListResponse represents the response for listing food entries.
type FoodEntryListResponse struct {
	Entries []FoodEntryResponse `json:"entries"`
}

// ToFoodEntryResponse converts a domain FoodEntry to its response DTO.
func ToFoodEntryResponse(e *entity.FoodEntry) FoodEntryResponse {
	return FoodEntryResponse{
		ID:           e.ID.String(),
		Type:         string(e.Type),
		FoodName:     e.FoodName,
		Calories:     e.Calories,
		HealthScore:  e.HealthScore,
		AnalysisData: e.AnalysisData,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

// ToFoodEntryListResponse converts a slice of food entries to the list DTO.
func ToFoodEntryListResponse(entries []*entity.FoodEntry) FoodEntryListResponse {
	responses := make([]FoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToFoodEntryResponse(entry))
	}
	return FoodEntryListResponse{Entries: responses}
}

// ToFoodAnalysisResponse converts a vision analysis to its response DTO.
func ToFoodAnalysisResponse(a *adapter.FoodAnalysis) FoodAnalysisResponse {
	return FoodAnalysisResponse{
		FoodName:    a.FoodName,
		Calories:    a.Calories,
		HealthScore: a.HealthScore,
		ProteinG:    a.ProteinG,
		CarbsG:      a.CarbsG,
		FatG:        a.FatG,
		FiberG:      a.FiberG,
		SugarsG:     a.SugarsG,
		PortionSize: a.PortionSize,
		Benefits:    a.Benefits,
		Concerns:    a.Concerns,
		Items:       a.Items,
	}
}

// ToRefrigeratorAnalysisResponse converts a scan analysis to its response DTO.
func ToRefrigeratorAnalysisResponse(a *adapter.RefrigeratorAnalysis) RefrigeratorAnalysisResponse {
	items := make([]RefrigeratorItemResponse, 0, len(a.Items))
	for _, item := range a.Items {
		items = append(items, RefrigeratorItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Category: item.Category,
		})
	}
	recipes := make([]SuggestedRecipeResponse, 0, len(a.SuggestedRecipes))
	for _, recipe := range a.SuggestedRecipes {
		recipes = append(recipes, SuggestedRecipeResponse{
			Name:        recipe.Name,
			Calories:    recipe.Calories,
			Ingredients: recipe.Ingredients,
			Recipe:      recipe.Recipe,
			TimeMinutes: recipe.TimeMinutes,
		})
	}
	return RefrigeratorAnalysisResponse{
		Items:                   items,
		ExpiringItems:           a.ExpiringItems,
		SuggestedRecipes:        recipes,
		InventorySummary:        a.InventorySummary,
		FoodGroups:              a.FoodGroups,
		ShoppingRecommendations: a.ShoppingRecommendations,
	}
}
