package application

import "errors"

// Service-level sentinels. Handlers translate these into HTTP statuses.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGoalNotFound  = errors.New("goal not found")
	ErrEventNotFound = errors.New("event not found")
	ErrTeamNotFound  = errors.New("team not found")

	// ErrSameTeamMembers: a team needs two distinct users.
	ErrSameTeamMembers = errors.New("team members must be two distinct users")
	// ErrGoalOwnership: an event's goal must belong to the event's user.
	ErrGoalOwnership = errors.New("goal does not belong to user")
	// ErrAlreadyLoggedToday: the once-per-day gate rejected the event.
	ErrAlreadyLoggedToday = errors.New("goal already completed today")
	// ErrEmailTaken: another user owns the email address.
	ErrEmailTaken = errors.New("email already registered")
	// ErrGoalTypeTaken: the user already has a goal of this type.
	ErrGoalTypeTaken = errors.New("user already has a goal of this type")
)
