package dto

import (
	"time"

	"github.com/nutrition-tracker/backend/internal/application/usecase/goal"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a goal.
type CreateGoalRequest struct {
	Type         string  `json:"type" binding:"required,oneof=weight calories exercise"`
	CurrentValue float64 `json:"current_value" binding:"required,gt=0"`
	TargetValue  float64 `json:"target_value" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"omitempty,oneof=kg lb"`
	Deadline     string  `json:"deadline" binding:"required"`
	Reason       string  `json:"reason" binding:"omitempty,max=255"`
	ReasonDetail string  `json:"reason_detail" binding:"omitempty,max=1000"`
}

// UpdateGoalRequest represents the request body for updating a goal.
// All fields are optional; absent fields keep their current values.
type UpdateGoalRequest struct {
	CurrentValue *float64 `json:"current_value" binding:"omitempty,gt=0"`
	TargetValue  *float64 `json:"target_value" binding:"omitempty,gt=0"`
	Unit         *string  `json:"unit" binding:"omitempty,oneof=kg lb"`
	Deadline     *string  `json:"deadline"`
	Reason       *string  `json:"reason" binding:"omitempty,max=255"`
	ReasonDetail *string  `json:"reason_detail" binding:"omitempty,max=1000"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit,omitempty"`
	Deadline     string  `json:"deadline"`
	Reason       string  `json:"reason,omitempty"`
	ReasonDetail string  `json:"reason_detail,omitempty"`
	IsAutomatic  bool    `json:"is_automatic"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// GoalDetailResponse is a goal together with its computed progress.
type GoalDetailResponse struct {
	GoalResponse
	Progress     int      `json:"progress"`
	Status       string   `json:"status"`
	LatestWeight *float64 `json:"latest_weight,omitempty"`
}

// GoalViewResponse is a goal with progress and display-unit conversions
// applied, as served by the list endpoint.
type GoalViewResponse struct {
	GoalResponse
	Progress            int      `json:"progress"`
	Status              string   `json:"status"`
	LatestWeight        *float64 `json:"latest_weight,omitempty"`
	DisplayUnit         string   `json:"display_unit"`
	DisplayCurrentValue float64  `json:"display_current_value"`
	DisplayTargetValue  float64  `json:"display_target_value"`
	DisplayLatestWeight *float64 `json:"display_latest_weight,omitempty"`
}

// GoalListResponse represents the response for listing goals. Degraded is
// true when goals were served from the local fallback mirror.
type GoalListResponse struct {
	Goals    []GoalViewResponse `json:"goals"`
	Degraded bool               `json:"degraded"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	resp := GoalResponse{
		ID:           g.ID.String(),
		Type:         string(g.Type),
		CurrentValue: g.CurrentValue,
		TargetValue:  g.TargetValue,
		Deadline:     g.Deadline.Format("2006-01-02"),
		Reason:       g.Reason,
		ReasonDetail: g.ReasonDetail,
		IsAutomatic:  g.IsAutomatic,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
	if g.Type == entity.GoalTypeWeight {
		resp.Unit = string(g.EffectiveUnit())
	}
	return resp
}

// ToGoalViewResponse converts a computed goal view to its response DTO.
func ToGoalViewResponse(view *goal.GoalView) GoalViewResponse {
	return GoalViewResponse{
		GoalResponse:        ToGoalResponse(view.Goal),
		Progress:            view.Progress,
		Status:              string(view.Status),
		LatestWeight:        view.LatestWeight,
		DisplayUnit:         string(view.DisplayUnit),
		DisplayCurrentValue: view.DisplayCurrentValue,
		DisplayTargetValue:  view.DisplayTargetValue,
		DisplayLatestWeight: view.DisplayLatestWeight,
	}
}

// ToGoalListResponse converts the list use case output to its response DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	views := make([]GoalViewResponse, 0, len(output.Goals))
	for _, view := range output.Goals {
		views = append(views, ToGoalViewResponse(view))
	}
	return GoalListResponse{
		Goals:    views,
		Degraded: output.Degraded,
	}
}
