package scoring

import (
	"time"

	"github.com/fitleague/fitleague/internal/domain/entity"
)

// CanLogEventForGoal reports whether the user may log a new completion event
// for the goal on the calendar day that now falls on. It is true iff none of
// the given events for this (user, goal) pair share that day. One completion
// per goal per day keeps rapid repeated submissions from inflating scores.
//
// The result is advisory: a racing submission can invalidate it between check
// and write, so callers must re-validate on a fresh snapshot right before
// persisting, and the store enforces the invariant authoritatively with a
// uniqueness constraint.
//
// Events for a different goal owned by the same user never block eligibility;
// the gate is scoped per (user, goal).
func (c *Calendar) CanLogEventForGoal(userID, goalID string, events []entity.Event, now time.Time) bool {
	today := c.DayKey(now)
	for _, e := range events {
		if e.UserID != userID || e.GoalID != goalID {
			continue
		}
		if c.DayKey(e.DateTime) == today {
			return false
		}
	}
	return true
}
