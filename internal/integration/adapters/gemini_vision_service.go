// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// GeminiVisionService implements the VisionService using Google Gemini.
type GeminiVisionService struct {
	apiKey    string
	modelName string
}

// NewGeminiVisionService creates a new Gemini vision service instance.
func NewGeminiVisionService(apiKey, modelName string) *GeminiVisionService {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiVisionService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiVisionService) IsAvailable() bool {
	return s.apiKey != ""
}

// AnalyzeImage analyzes a meal photo. The optional hint carries a
// user-corrected food name; when present the model is told to trust it over
// its own identification.
func (s *GeminiVisionService) AnalyzeImage(ctx context.Context, imageDataURL, hint string) (*adapter.FoodAnalysis, error) {
	format, imageData, err := decodeImageDataURL(imageDataURL)
	if err != nil {
		return nil, domainerror.NewFoodEntryError(
			domainerror.ErrCodeInvalidImageData,
			"image must be a base64 data URL",
			err,
		)
	}

	prompt := foodAnalysisPrompt
	if hint != "" {
		prompt += fmt.Sprintf("\n\nThe user has identified this food as %q. Treat that identification as correct and estimate the nutrition for it.", hint)
	}

	raw, err := s.generate(ctx, genai.ImageData(format, imageData), genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	return parseFoodAnalysis(raw)
}

// AnalyzeRefrigeratorImage analyzes a refrigerator photo.
func (s *GeminiVisionService) AnalyzeRefrigeratorImage(ctx context.Context, imageDataURL string) (*adapter.RefrigeratorAnalysis, error) {
	format, imageData, err := decodeImageDataURL(imageDataURL)
	if err != nil {
		return nil, domainerror.NewFoodEntryError(
			domainerror.ErrCodeInvalidImageData,
			"image must be a base64 data URL",
			err,
		)
	}

	raw, err := s.generate(ctx, genai.ImageData(format, imageData), genai.Text(refrigeratorAnalysisPrompt))
	if err != nil {
		return nil, err
	}

	var analysis adapter.RefrigeratorAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionMalformedResponse,
			"could not parse refrigerator analysis",
			err,
		)
	}
	if analysis.InventorySummary == "" {
		analysis.InventorySummary = fmt.Sprintf("%d items identified", len(analysis.Items))
	}
	return &analysis, nil
}

// GenerateMealPlan generates a meal suggestion from available ingredients and
// meal history.
func (s *GeminiVisionService) GenerateMealPlan(ctx context.Context, request adapter.MealPlanRequest) (*adapter.MealPlanSuggestion, error) {
	var sb strings.Builder
	sb.WriteString("You are a nutritionist planning a single ")
	sb.WriteString(request.MealType)
	sb.WriteString(".\n")

	if len(request.Ingredients) > 0 {
		sb.WriteString("Prefer these available ingredients: ")
		sb.WriteString(strings.Join(request.Ingredients, ", "))
		sb.WriteString(".\n")
	}
	if len(request.History) > 0 {
		sb.WriteString("Avoid repeating these recent meals: ")
		sb.WriteString(strings.Join(request.History, ", "))
		sb.WriteString(".\n")
	}
	if request.CalorieTarget > 0 {
		sb.WriteString(fmt.Sprintf("Aim for roughly %d kcal.\n", request.CalorieTarget))
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "name": "meal name",
  "calories": integer kcal,
  "protein_g": number,
  "ingredients": ["list", "of", "ingredients"],
  "recipe": "short preparation steps",
  "time_minutes": integer preparation time
}
Return only the JSON object, no additional text.`)

	raw, err := s.generate(ctx, genai.Text(sb.String()))
	if err != nil {
		return nil, err
	}

	var suggestion adapter.MealPlanSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionMalformedResponse,
			"could not parse meal suggestion",
			err,
		)
	}
	if suggestion.Name == "" {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionMalformedResponse,
			"meal suggestion missing a name",
			nil,
		)
	}
	return &suggestion, nil
}

// generate runs one generation call and returns the cleaned text payload.
func (s *GeminiVisionService) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.NewVisionError(
			domainerror.ErrCodeVisionNotConfigured,
			"vision service is not configured",
			domainerror.ErrVisionNotConfigured,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", domainerror.NewVisionError(
			domainerror.ErrCodeVisionServiceError,
			"failed to create gemini client",
			err,
		)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", mapGenerateError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", domainerror.NewVisionError(
			domainerror.ErrCodeVisionContentPolicy,
			"request blocked by content policy",
			domainerror.ErrVisionContentPolicy,
		)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerror.NewVisionError(
			domainerror.ErrCodeVisionMalformedResponse,
			"empty response from gemini",
			domainerror.ErrVisionMalformedResponse,
		)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return "", domainerror.NewVisionError(
			domainerror.ErrCodeVisionMalformedResponse,
			"no text content in response",
			domainerror.ErrVisionMalformedResponse,
		)
	}

	return stripMarkdownFences(textContent), nil
}

// mapGenerateError classifies transport errors into domain errors.
func mapGenerateError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource_exhausted"):
		return domainerror.NewVisionError(
			domainerror.ErrCodeVisionRateLimited,
			"vision service rate limited",
			err,
		)
	case strings.Contains(msg, "safety") || strings.Contains(msg, "blocked"):
		return domainerror.NewVisionError(
			domainerror.ErrCodeVisionContentPolicy,
			"request blocked by content policy",
			err,
		)
	default:
		return domainerror.NewVisionError(
			domainerror.ErrCodeVisionServiceError,
			"vision request failed",
			err,
		)
	}
}

// decodeImageDataURL splits a data URL into its image format and raw bytes.
func decodeImageDataURL(dataURL string) (string, []byte, error) {
	const prefix = "data:image/"
	if !strings.HasPrefix(dataURL, prefix) {
		return "", nil, fmt.Errorf("not an image data URL")
	}

	rest := dataURL[len(prefix):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}

	format := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty image payload")
	}
	return format, data, nil
}

// stripMarkdownFences removes ```json fences the model sometimes emits even
// with a JSON response MIME type.
func stripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

const foodAnalysisPrompt = `Analyze the food in this photo and respond with a single JSON object:
{
  "food_name": "specific name of the dish or food",
  "calories": integer estimated kcal for the visible portion,
  "health_score": number 1-10 (10 is healthiest),
  "protein_g": number,
  "carbs_g": number,
  "fat_g": number,
  "fiber_g": number,
  "sugars_g": number,
  "portion_size": "human readable portion estimate",
  "benefits": "short note on nutritional benefits",
  "concerns": "short note on nutritional concerns",
  "items": ["individual", "food", "items", "visible"]
}
Return only the JSON object, no additional text.`

const refrigeratorAnalysisPrompt = `Analyze the refrigerator contents in this photo and respond with a single JSON object:
{
  "items": [{"name": "item", "quantity": "estimate", "category": "produce|dairy|protein|condiment|beverage|other"}],
  "expiring_items": ["items that look close to expiring"],
  "suggested_recipes": [{"name": "recipe", "calories": integer, "ingredients": ["from", "the", "fridge"], "recipe": "short steps", "time_minutes": integer}],
  "inventory_summary": "one sentence inventory overview",
  "food_groups": ["food groups present"],
  "shopping_recommendations": ["items worth restocking"]
}
Return only the JSON object, no additional text.`

// parseFoodAnalysis decodes the model response defensively: missing or
// mistyped fields fall back to usable defaults instead of failing the whole
// analysis, since a partial result still beats manual entry.
func parseFoodAnalysis(raw string) (*adapter.FoodAnalysis, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, domainerror.NewVisionError(
			domainerror.ErrCodeVisionMalformedResponse,
			"could not parse food analysis",
			err,
		)
	}

	analysis := &adapter.FoodAnalysis{
		FoodName:    stringField(fields, "food_name", "Unknown food"),
		Calories:    intField(fields, "calories", 0),
		HealthScore: floatField(fields, "health_score", 5),
		ProteinG:    floatField(fields, "protein_g", 0),
		CarbsG:      floatField(fields, "carbs_g", 0),
		FatG:        floatField(fields, "fat_g", 0),
		FiberG:      floatField(fields, "fiber_g", 0),
		SugarsG:     floatField(fields, "sugars_g", 0),
		PortionSize: stringField(fields, "portion_size", "1 serving"),
		Benefits:    stringField(fields, "benefits", ""),
		Concerns:    stringField(fields, "concerns", ""),
		Items:       stringSliceField(fields, "items"),
	}
	return analysis, nil
}

func stringField(fields map[string]json.RawMessage, key, fallback string) string {
	raw, ok := fields[key]
	if !ok {
		return fallback
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return fallback
	}
	return value
}

func intField(fields map[string]json.RawMessage, key string, fallback int) int {
	return int(floatField(fields, key, float64(fallback)))
}

func floatField(fields map[string]json.RawMessage, key string, fallback float64) float64 {
	raw, ok := fields[key]
	if !ok {
		return fallback
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err == nil {
		return value
	}
	// Models occasionally quote numbers.
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(quoted), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func stringSliceField(fields map[string]json.RawMessage, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
