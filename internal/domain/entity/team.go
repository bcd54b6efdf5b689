package entity

import "time"

// Team is an unordered pair of two distinct users. The two member ids must
// differ; that is validated at creation time by the application layer.
type Team struct {
	ID        string
	UserIDOne string
	UserIDTwo string
	TeamName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMember reports whether the given user belongs to the team.
func (t *Team) HasMember(userID string) bool {
	return userID != "" && (t.UserIDOne == userID || t.UserIDTwo == userID)
}
