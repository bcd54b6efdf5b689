package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/internal/domain/scoring"
)

type leaderboardFixture struct {
	svc    *LeaderboardService
	users  *fakeUserRepo
	goals  *fakeGoalRepo
	events *fakeEventRepo
	teams  *fakeTeamRepo
}

func newLeaderboardFixture(t *testing.T) *leaderboardFixture {
	t.Helper()
	cal, err := scoring.NewCalendar("America/Denver")
	require.NoError(t, err)

	f := &leaderboardFixture{
		users:  newFakeUserRepo(),
		goals:  newFakeGoalRepo(),
		events: newFakeEventRepo(cal),
		teams:  newFakeTeamRepo(),
	}
	f.svc = NewLeaderboardService(f.users, f.goals, f.events, f.teams, cal, nil, nil, time.Minute)
	return f
}

func (f *leaderboardFixture) addUser(t *testing.T, first, last string) *entity.User {
	t.Helper()
	u := &entity.User{FirstName: first, LastName: last, Email: first + "." + last + "@example.com"}
	require.NoError(t, f.users.Create(u))
	return u
}

func (f *leaderboardFixture) addGoal(t *testing.T, userID, goalType string) *entity.Goal {
	t.Helper()
	g := &entity.Goal{UserID: userID, GoalName: goalType, GoalType: goalType}
	require.NoError(t, f.goals.Create(g))
	return g
}

// addEvents logs n events for the user spread across distinct goals, all
// within the same Denver day.
func (f *leaderboardFixture) addEvents(t *testing.T, userID string, day time.Time, goalIDs ...string) {
	t.Helper()
	for i, goalID := range goalIDs {
		e := &entity.Event{UserID: userID, GoalID: goalID, DateTime: day.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, f.events.Create(e))
	}
}

func TestLeaderboardGet(t *testing.T) {
	// 18:00 UTC is mid-day in Denver year-round; adding a few hours never
	// crosses the reference day boundary.
	day1 := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	t.Run("ranks users by score with name tiebreak", func(t *testing.T) {
		f := newLeaderboardFixture(t)
		alice := f.addUser(t, "Alice", "Nguyen")
		bob := f.addUser(t, "Bob", "Marsh")
		cara := f.addUser(t, "Cara", "Ito")

		ag := f.addGoal(t, alice.ID, "endurance")
		bg1 := f.addGoal(t, bob.ID, "endurance")
		bg2 := f.addGoal(t, bob.ID, "strength")

		// Alice: 1 event = 1 point. Bob: 2 events = 2 points. Cara: none.
		f.addEvents(t, alice.ID, day1, ag.ID)
		f.addEvents(t, bob.ID, day1, bg1.ID, bg2.ID)

		lb, err := f.svc.Get(context.Background())
		require.NoError(t, err)
		require.Len(t, lb.Users, 3)

		assert.Equal(t, bob.ID, lb.Users[0].UserID)
		assert.Equal(t, 2, lb.Users[0].Score)
		assert.Equal(t, alice.ID, lb.Users[1].UserID)
		assert.Equal(t, 1, lb.Users[1].Score)
		assert.Equal(t, cara.ID, lb.Users[2].UserID)
		assert.Equal(t, 0, lb.Users[2].Score)
	})

	t.Run("applies the daily bonus at four events", func(t *testing.T) {
		f := newLeaderboardFixture(t)
		alice := f.addUser(t, "Alice", "Nguyen")
		var goalIDs []string
		for _, gt := range []string{"endurance", "strength", "diet", "flexibility"} {
			goalIDs = append(goalIDs, f.addGoal(t, alice.ID, gt).ID)
		}
		f.addEvents(t, alice.ID, day1, goalIDs...)

		lb, err := f.svc.Get(context.Background())
		require.NoError(t, err)
		require.Len(t, lb.Users, 1)
		assert.Equal(t, 5, lb.Users[0].Score) // 4 events + 1 bonus
	})

	t.Run("team score adds synergy when both members hit the bonus the same day", func(t *testing.T) {
		f := newLeaderboardFixture(t)
		alice := f.addUser(t, "Alice", "Nguyen")
		bob := f.addUser(t, "Bob", "Marsh")
		team := &entity.Team{UserIDOne: alice.ID, UserIDTwo: bob.ID, TeamName: "Sweat Equity"}
		require.NoError(t, f.teams.Create(team))

		types := []string{"endurance", "strength", "diet", "flexibility"}
		var aliceGoals, bobGoals []string
		for _, gt := range types {
			aliceGoals = append(aliceGoals, f.addGoal(t, alice.ID, gt).ID)
			bobGoals = append(bobGoals, f.addGoal(t, bob.ID, gt).ID)
		}
		f.addEvents(t, alice.ID, day1, aliceGoals...)
		f.addEvents(t, bob.ID, day1, bobGoals...)

		lb, err := f.svc.Get(context.Background())
		require.NoError(t, err)
		require.Len(t, lb.Teams, 1)
		// 8 events + 2 member bonuses + 1 synergy
		assert.Equal(t, 11, lb.Teams[0].Score)
	})

	t.Run("no synergy when the bonus days differ", func(t *testing.T) {
		f := newLeaderboardFixture(t)
		alice := f.addUser(t, "Alice", "Nguyen")
		bob := f.addUser(t, "Bob", "Marsh")
		team := &entity.Team{UserIDOne: alice.ID, UserIDTwo: bob.ID, TeamName: "Sweat Equity"}
		require.NoError(t, f.teams.Create(team))

		types := []string{"endurance", "strength", "diet", "flexibility"}
		var aliceGoals, bobGoals []string
		for _, gt := range types {
			aliceGoals = append(aliceGoals, f.addGoal(t, alice.ID, gt).ID)
			bobGoals = append(bobGoals, f.addGoal(t, bob.ID, gt).ID)
		}
		f.addEvents(t, alice.ID, day1, aliceGoals...)
		f.addEvents(t, bob.ID, day2, bobGoals...)

		lb, err := f.svc.Get(context.Background())
		require.NoError(t, err)
		require.Len(t, lb.Teams, 1)
		// 8 events + 2 member bonuses, no synergy
		assert.Equal(t, 10, lb.Teams[0].Score)
	})

	t.Run("events of a deleted member no longer count", func(t *testing.T) {
		f := newLeaderboardFixture(t)
		alice := f.addUser(t, "Alice", "Nguyen")
		bob := f.addUser(t, "Bob", "Marsh")
		team := &entity.Team{UserIDOne: alice.ID, UserIDTwo: bob.ID, TeamName: "Sweat Equity"}
		require.NoError(t, f.teams.Create(team))

		ag := f.addGoal(t, alice.ID, "endurance")
		bg := f.addGoal(t, bob.ID, "endurance")
		f.addEvents(t, alice.ID, day1, ag.ID)
		f.addEvents(t, bob.ID, day1, bg.ID)

		// Cascade delete in the real store removes bob's events too; mirror
		// that here.
		require.NoError(t, f.users.Delete(bob.ID))
		for _, e := range mustList(t, f.events) {
			if e.UserID == bob.ID {
				require.NoError(t, f.events.Delete(e.ID))
			}
		}

		lb, err := f.svc.Get(context.Background())
		require.NoError(t, err)
		require.Len(t, lb.Teams, 1)
		assert.Equal(t, 1, lb.Teams[0].Score)
	})

	t.Run("empty store yields empty standings", func(t *testing.T) {
		f := newLeaderboardFixture(t)
		lb, err := f.svc.Get(context.Background())
		require.NoError(t, err)
		assert.Empty(t, lb.Users)
		assert.Empty(t, lb.Teams)
		assert.False(t, lb.GeneratedAt.IsZero())
	})
}

func mustList(t *testing.T, r *fakeEventRepo) []entity.Event {
	t.Helper()
	events, err := r.List()
	require.NoError(t, err)
	return events
}
