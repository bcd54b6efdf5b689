package repository

import "errors"

// Sentinel errors shared by all repository implementations. Application
// services match on these with errors.Is and map them to API failures.
var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateDay: an event for the same (user, goal) already exists on
	// that reference-timezone calendar day.
	ErrDuplicateDay = errors.New("event already logged for goal today")
	// ErrDuplicateGoalType: the user already has a goal with that goal type.
	ErrDuplicateGoalType = errors.New("goal type already exists for user")
	// ErrDuplicateEmail: another user is registered with that email.
	ErrDuplicateEmail = errors.New("email already registered")
)
