// Package error defines domain-specific errors for the Nutrition Tracker application.
package error

import "errors"

// Meal plan domain errors.
var (
	// ErrMealPlanNotFound is returned when a meal plan is not found in the system.
	ErrMealPlanNotFound = errors.New("meal plan not found")

	// ErrUnauthorizedMealPlanAccess is returned when a user accesses a meal plan they do not own.
	ErrUnauthorizedMealPlanAccess = errors.New("unauthorized meal plan access")

	// ErrInvalidMealType is returned when the meal type is not one of the supported meals.
	ErrInvalidMealType = errors.New("invalid meal type")

	// ErrInvalidCalorieTarget is returned when the suggestion calorie target is non-positive.
	ErrInvalidCalorieTarget = errors.New("invalid calorie target")
)

// MealPlanErrorCode defines error codes for meal plan errors.
// Format: MEAL-XXYYYY where XX is category and YYYY is specific error.
type MealPlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMealType      MealPlanErrorCode = "MEAL-010001"
	ErrCodeInvalidCalorieTarget MealPlanErrorCode = "MEAL-010002"
	ErrCodeMissingMealFields    MealPlanErrorCode = "MEAL-010003"

	// Lookup errors (02XXXX)
	ErrCodeMealPlanNotFound MealPlanErrorCode = "MEAL-020001"

	// Access errors (03XXXX)
	ErrCodeUnauthorizedMealPlanAccess MealPlanErrorCode = "MEAL-030001"
)

// MealPlanError represents a meal plan error with code and message.
type MealPlanError struct {
	Code    MealPlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MealPlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MealPlanError) Unwrap() error {
	return e.Err
}

// NewMealPlanError creates a new MealPlanError with the given code and message.
func NewMealPlanError(code MealPlanErrorCode, message string, err error) *MealPlanError {
	return &MealPlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
