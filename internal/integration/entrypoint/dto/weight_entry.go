package dto

import (
	"time"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// AddWeightEntryRequest represents the request body for logging a weight
// measurement against a goal.
type AddWeightEntryRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Unit   string  `json:"unit" binding:"omitempty,oneof=kg lb"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes" binding:"omitempty,max=1000"`
}

// WeightEntryResponse represents a weight entry in API responses.
type WeightEntryResponse struct {
	ID        string  `json:"id"`
	GoalID    string  `json:"goal_id"`
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
	Unit      string  `json:"unit"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// WeightEntryListResponse represents the response for listing weight entries.
type WeightEntryListResponse struct {
	Entries []WeightEntryResponse `json:"entries"`
}

// ToWeightEntryResponse converts a domain WeightEntry to its response DTO.
func ToWeightEntryResponse(e *entity.WeightEntry) WeightEntryResponse {
	return WeightEntryResponse{
		ID:        e.ID.String(),
		GoalID:    e.GoalID.String(),
		Date:      e.Date.Format("2006-01-02"),
		Weight:    e.Weight,
		Unit:      string(e.Unit),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

// ToWeightEntryListResponse converts a slice of weight entries to the list DTO.
func ToWeightEntryListResponse(entries []*entity.WeightEntry) WeightEntryListResponse {
	responses := make([]WeightEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToWeightEntryResponse(entry))
	}
	return WeightEntryListResponse{Entries: responses}
}
