package service

import "errors"

// --- Error Definitions ---
var (
	ErrTraineeNotFound    = errors.New("trainee not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrEvaluationNotFound = errors.New("evaluation not found")

	// ErrValidation marks a domain-rule violation. Callers wrap it with
	// a message naming the violated rule, so handlers can match it with
	// errors.Is and still surface an actionable reason.
	ErrValidation = errors.New("validation failed")

	// ErrIDMismatch is returned when the identity in the request path
	// does not match the identity in the request body.
	ErrIDMismatch = errors.New("path and body identifiers do not match")

	// ErrActiveGoalConflict is the validation-class translation of the
	// storage layer's exclusivity constraint: a concurrent writer got
	// there first with another active goal for the same trainee.
	ErrActiveGoalConflict = errors.New("trainee already has an active goal")
)
