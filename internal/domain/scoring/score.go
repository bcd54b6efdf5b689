package scoring

import (
	"github.com/fitleague/fitleague/internal/domain/entity"
)

// Scoring policy constants. These are fixed product rules, not per-user
// configuration.
const (
	// EventPoints is the base score for every logged completion event.
	EventPoints = 1
	// DailyBonusThreshold is the number of events a member must log on one
	// reference-timezone calendar day to earn the day bonus.
	DailyBonusThreshold = 4
	// DayBonusPoints is awarded per day on which a member reaches the
	// threshold; for teams, one more is awarded when both members reach it on
	// the same day.
	DayBonusPoints = 1
)

// GoalProgress counts the completion events logged against a single goal.
func (c *Calendar) GoalProgress(goal *entity.Goal, events []entity.Event) int {
	n := 0
	for _, e := range events {
		if e.GoalID == goal.ID {
			n++
		}
	}
	return n
}

// UserScore computes the individual leaderboard score: one point per event
// plus one bonus point for every reference-timezone calendar day with at
// least DailyBonusThreshold events.
//
// events must already be the user's events. They are counted raw, not
// deduplicated by goal: the eligibility gate normally prevents same-goal
// duplicates within a day, but the score must stay well defined even when
// that invariant is violated upstream. goals is reserved for future per-goal
// weighting and does not affect the score today.
func (c *Calendar) UserScore(user *entity.User, goals []entity.Goal, events []entity.Event) int {
	base := len(events) * EventPoints

	perDay := make(map[string]int)
	for _, e := range events {
		perDay[c.DayKey(e.DateTime)]++
	}

	bonus := 0
	for _, n := range perDay {
		if n >= DailyBonusThreshold {
			bonus += DayBonusPoints
		}
	}
	return base + bonus
}

// TeamScore computes a two-person team's leaderboard score from the combined
// event set of both members. Per calendar day: base points for every member
// event, a bonus point per member who reached DailyBonusThreshold, and one
// synergy point when both members reached it on the same day.
//
// The synergy point is why this cannot be derived by summing the members'
// individual scores: individual scoring never sees cross-member coincidence.
// Events whose UserID matches neither member are ignored, so a team whose
// member record has been deleted degrades to that side contributing nothing
// rather than failing.
func (c *Calendar) TeamScore(team *entity.Team, goals []entity.Goal, events []entity.Event) int {
	type dayCounts struct {
		one int
		two int
	}
	perDay := make(map[string]*dayCounts)
	for _, e := range events {
		if e.UserID != team.UserIDOne && e.UserID != team.UserIDTwo {
			continue
		}
		key := c.DayKey(e.DateTime)
		dc := perDay[key]
		if dc == nil {
			dc = &dayCounts{}
			perDay[key] = dc
		}
		if e.UserID == team.UserIDOne {
			dc.one++
		} else {
			dc.two++
		}
	}

	total := 0
	for _, dc := range perDay {
		total += (dc.one + dc.two) * EventPoints
		oneBonus := dc.one >= DailyBonusThreshold
		twoBonus := dc.two >= DailyBonusThreshold
		if oneBonus {
			total += DayBonusPoints
		}
		if twoBonus {
			total += DayBonusPoints
		}
		if oneBonus && twoBonus {
			total += DayBonusPoints
		}
	}
	return total
}
