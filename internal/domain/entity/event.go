package entity

import "time"

// Event records one completion of a goal. Events are append-only: created
// once, read for scoring and eligibility, never mutated. DateTime is a full
// instant; which calendar day it belongs to is decided by the scoring
// package's reference-timezone calendar, not by this struct.
type Event struct {
	ID        string
	UserID    string
	GoalID    string
	DateTime  time.Time
	Note      string
	CreatedAt time.Time
}
