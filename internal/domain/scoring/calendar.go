// Package scoring computes leaderboard scores and once-per-day logging
// eligibility from in-memory snapshots of users, goals, events and teams.
// Every function here is pure: no I/O, no hidden state, inputs never mutated.
package scoring

import (
	"time"
)

// DayKeyLayout is the calendar-date format produced by Calendar.DayKey.
const DayKeyLayout = "2006-01-02"

// Calendar anchors all "daily" semantics to one fixed reference timezone so a
// user logging at 11pm Pacific and a job running at 2am UTC agree on which
// calendar day an event belongs to.
type Calendar struct {
	loc *time.Location
}

// NewCalendar builds a Calendar for the given IANA timezone identifier, e.g.
// "America/Denver". An unknown identifier is a configuration defect and is
// returned as an error rather than silently falling back to UTC.
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Calendar{loc: loc}, nil
}

// MustCalendar is NewCalendar for tests and seeds where the identifier is a
// literal.
func MustCalendar(timezone string) *Calendar {
	c, err := NewCalendar(timezone)
	if err != nil {
		panic(err)
	}
	return c
}

// Location exposes the reference location for callers that need to build
// instants in the reference timezone (seeds, tests).
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// DayKey returns the calendar date (YYYY-MM-DD) the instant falls on in the
// reference timezone. Two keys are comparable with ordinary string equality.
func (c *Calendar) DayKey(t time.Time) string {
	return t.In(c.loc).Format(DayKeyLayout)
}
