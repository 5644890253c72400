package dto

// SetDisplayUnitRequest represents the request body for setting the
// preferred weight display unit.
type SetDisplayUnitRequest struct {
	Unit string `json:"unit" binding:"required,oneof=kg lb"`
}

// DisplayUnitResponse represents the user's preferred weight display unit.
type DisplayUnitResponse struct {
	Unit string `json:"unit"`
}
