// Package error defines domain-specific errors for the Nutrition Tracker application.
package error

import "errors"

// Food entry domain errors.
var (
	// ErrFoodEntryNotFound is returned when a food entry is not found in the system.
	ErrFoodEntryNotFound = errors.New("food entry not found")

	// ErrUnauthorizedFoodEntryAccess is returned when a user accesses an entry they do not own.
	ErrUnauthorizedFoodEntryAccess = errors.New("unauthorized food entry access")

	// ErrInvalidFoodEntryType is returned when the entry type is not food or refrigerator.
	ErrInvalidFoodEntryType = errors.New("invalid food entry type")

	// ErrInvalidImageData is returned when the submitted image data URL cannot be decoded.
	ErrInvalidImageData = errors.New("invalid image data")
)

// FoodEntryErrorCode defines error codes for food entry errors.
// Format: FOOD-XXYYYY where XX is category and YYYY is specific error.
type FoodEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFoodEntryType FoodEntryErrorCode = "FOOD-010001"
	ErrCodeInvalidImageData     FoodEntryErrorCode = "FOOD-010002"

	// Lookup errors (02XXXX)
	ErrCodeFoodEntryNotFound FoodEntryErrorCode = "FOOD-020001"

	// Access errors (03XXXX)
	ErrCodeUnauthorizedFoodEntryAccess FoodEntryErrorCode = "FOOD-030001"
)

// FoodEntryError represents a food entry error with code and message.
type FoodEntryError struct {
	Code    FoodEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FoodEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FoodEntryError) Unwrap() error {
	return e.Err
}

// NewFoodEntryError creates a new FoodEntryError with the given code and message.
func NewFoodEntryError(code FoodEntryErrorCode, message string, err error) *FoodEntryError {
	return &FoodEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
