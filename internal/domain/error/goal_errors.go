// Package error defines domain-specific errors for the Nutrition Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUnauthorizedGoalAccess is returned when a user accesses a goal they do not own.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized goal access")

	// ErrInvalidGoalType is returned when the goal type is not weight, calories, or exercise.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidGoalValues is returned when goal values are missing or non-positive.
	ErrInvalidGoalValues = errors.New("invalid goal values")

	// ErrInvalidWeightUnit is returned when a weight goal carries an unsupported unit.
	ErrInvalidWeightUnit = errors.New("invalid weight unit")

	// ErrGoalStoreUnavailable is returned when both the primary store and the
	// local fallback mirror failed to serve a goal read.
	ErrGoalStoreUnavailable = errors.New("goal store unavailable")

	// ErrWeightEntryNotFound is returned when a weight entry is not found.
	ErrWeightEntryNotFound = errors.New("weight entry not found")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOAL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalType   GoalErrorCode = "GOAL-010001"
	ErrCodeInvalidGoalValues GoalErrorCode = "GOAL-010002"
	ErrCodeInvalidWeightUnit GoalErrorCode = "GOAL-010003"
	ErrCodeMissingGoalFields GoalErrorCode = "GOAL-010004"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOAL-020001"
	ErrCodeWeightEntryNotFound GoalErrorCode = "GOAL-020002"

	// Access errors (03XXXX)
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOAL-030001"

	// Store errors (04XXXX)
	ErrCodeGoalStoreUnavailable GoalErrorCode = "GOAL-040001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
