// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// FoodAnalysis is the normalized result of analyzing a meal photo. Every
// field is populated: when the model omits one, the adapter substitutes a
// fallback default rather than failing the analysis.
type FoodAnalysis struct {
	FoodName    string   `json:"food_name"`
	Calories    int      `json:"calories"`
	HealthScore float64  `json:"health_score"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	FiberG      float64  `json:"fiber_g"`
	SugarsG     float64  `json:"sugars_g"`
	PortionSize string   `json:"portion_size"`
	Benefits    string   `json:"benefits"`
	Concerns    string   `json:"concerns"`
	Items       []string `json:"items"`
}

// RefrigeratorItem is a single item identified in a refrigerator scan.
type RefrigeratorItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

// SuggestedRecipe is a recipe suggestion derived from scanned inventory.
type SuggestedRecipe struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Recipe      string   `json:"recipe"`
	TimeMinutes int      `json:"time_minutes"`
}

// RefrigeratorAnalysis is the normalized result of analyzing a refrigerator photo.
type RefrigeratorAnalysis struct {
	Items                   []RefrigeratorItem `json:"items"`
	ExpiringItems           []string           `json:"expiring_items"`
	SuggestedRecipes        []SuggestedRecipe  `json:"suggested_recipes"`
	InventorySummary        string             `json:"inventory_summary"`
	FoodGroups              []string           `json:"food_groups"`
	ShoppingRecommendations []string           `json:"shopping_recommendations"`
}

// MealPlanRequest is the context passed to meal plan generation.
type MealPlanRequest struct {
	Ingredients   []string
	History       []string // recently eaten or suggested meal names to avoid repeating
	MealType      string
	CalorieTarget int
}

// MealPlanSuggestion is a generated meal suggestion.
type MealPlanSuggestion struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	Ingredients []string `json:"ingredients"`
	Recipe      string   `json:"recipe"`
	TimeMinutes int      `json:"time_minutes"`
}

// VisionService defines the interface for the vision/LLM collaborator that
// analyzes meal and refrigerator photos and generates meal plans.
type VisionService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// AnalyzeImage analyzes a meal photo supplied as a data URL. The optional
	// hint carries a user-corrected food name for the reanalysis flow.
	AnalyzeImage(ctx context.Context, imageDataURL, hint string) (*FoodAnalysis, error)

	// AnalyzeRefrigeratorImage analyzes a refrigerator photo supplied as a data URL.
	AnalyzeRefrigeratorImage(ctx context.Context, imageDataURL string) (*RefrigeratorAnalysis, error)

	// GenerateMealPlan generates a meal suggestion from available ingredients
	// and meal history.
	GenerateMealPlan(ctx context.Context, request MealPlanRequest) (*MealPlanSuggestion, error)
}
