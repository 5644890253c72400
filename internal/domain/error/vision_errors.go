// Package error defines domain-specific errors for the Nutrition Tracker application.
package error

import "errors"

// Vision/LLM service domain errors.
var (
	// ErrVisionServiceError is returned when the vision service encounters an error.
	ErrVisionServiceError = errors.New("vision service error")

	// ErrVisionRateLimited is returned when the vision service rate limits or
	// quota-limits requests.
	ErrVisionRateLimited = errors.New("vision service rate limited")

	// ErrVisionContentPolicy is returned when the vision service refuses the
	// request on content-policy grounds.
	ErrVisionContentPolicy = errors.New("vision request blocked by content policy")

	// ErrVisionMalformedResponse is returned when the vision response cannot
	// be parsed even after defensive cleanup.
	ErrVisionMalformedResponse = errors.New("malformed vision response")

	// ErrVisionNotConfigured is returned when no API key is configured.
	ErrVisionNotConfigured = errors.New("vision service is not configured")
)

// VisionErrorCode defines error codes for vision service errors.
// Format: VIS-XXYYYY where XX is category and YYYY is specific error.
type VisionErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeVisionNotConfigured VisionErrorCode = "VIS-010001"

	// External service errors (02XXXX)
	ErrCodeVisionServiceError      VisionErrorCode = "VIS-020001"
	ErrCodeVisionRateLimited       VisionErrorCode = "VIS-020002"
	ErrCodeVisionContentPolicy     VisionErrorCode = "VIS-020003"
	ErrCodeVisionMalformedResponse VisionErrorCode = "VIS-020004"
)

// VisionError represents a vision service error with code and message.
type VisionError struct {
	Code    VisionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VisionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VisionError) Unwrap() error {
	return e.Err
}

// NewVisionError creates a new VisionError with the given code and message.
func NewVisionError(code VisionErrorCode, message string, err error) *VisionError {
	return &VisionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
