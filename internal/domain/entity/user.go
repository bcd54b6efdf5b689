package entity

import (
	"time"
)

// User is the aggregate root for the user domain. Identity only; nothing on
// the user itself feeds into scoring.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	GamerTag  string
	AvatarURL string
	BannerURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used on leaderboards.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
