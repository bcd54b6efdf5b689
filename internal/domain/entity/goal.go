package entity

import "time"

// Goal belongs to exactly one user. GoalType is a semantic category, e.g.
// "weight_loss", "muscle_gain", "endurance", "strength"; at most one
// non-deleted goal may exist per (UserID, GoalType) pair.
type Goal struct {
	ID              string
	UserID          string
	GoalName        string
	GoalDescription string
	GoalType        string
	IsCompleted     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
