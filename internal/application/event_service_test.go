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

func newEventFixture(t *testing.T) (*EventService, *fakeGoalRepo, *fakeEventRepo, *fakePublisher) {
	t.Helper()
	cal, err := scoring.NewCalendar("America/Denver")
	require.NoError(t, err)

	goals := newFakeGoalRepo()
	events := newFakeEventRepo(cal)
	pub := &fakePublisher{}
	svc := NewEventService(events, goals, cal, pub, nil)
	return svc, goals, events, pub
}

func seedGoal(t *testing.T, goals *fakeGoalRepo, userID, goalType string) *entity.Goal {
	t.Helper()
	g := &entity.Goal{UserID: userID, GoalName: goalType + " goal", GoalType: goalType}
	require.NoError(t, goals.Create(g))
	return g
}

func TestEventCreate(t *testing.T) {
	userID := "11111111-1111-1111-1111-111111111111"
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("logs a first event and publishes", func(t *testing.T) {
		svc, goals, _, pub := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		e, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, noon, e.DateTime)

		msgs := pub.all()
		require.Len(t, msgs, 1)
		assert.Equal(t, ScoreEventLogged, msgs[0].Type)
		assert.Equal(t, e.ID, msgs[0].EventID)
	})

	t.Run("rejects a second event for the goal on the same day", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon.Add(4 * time.Hour)})
		assert.ErrorIs(t, err, ErrAlreadyLoggedToday)
	})

	t.Run("same UTC date is rejected only when reference days match", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		// 2024-03-10T02:00Z is still 2024-03-09 in Denver; 14:00Z is 2024-03-10.
		early := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
		later := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: early})
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: later})
		assert.NoError(t, err)
	})

	t.Run("allows logging again the next day", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon.Add(24 * time.Hour)})
		assert.NoError(t, err)
	})

	t.Run("different goals on the same day are independent", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		run := seedGoal(t, goals, userID, "endurance")
		lift := seedGoal(t, goals, userID, "strength")

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: run.ID, DateTime: noon})
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: lift.ID, DateTime: noon})
		assert.NoError(t, err)
	})

	t.Run("rejects an unknown goal", func(t *testing.T) {
		svc, _, _, _ := newEventFixture(t)
		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: "missing", DateTime: noon})
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("rejects logging against another user's goal", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, "22222222-2222-2222-2222-222222222222", "endurance")

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		assert.ErrorIs(t, err, ErrGoalOwnership)
	})

	t.Run("defaults the timestamp to now", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")
		svc.Now = func() time.Time { return noon }

		e, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID})
		require.NoError(t, err)
		assert.Equal(t, noon, e.DateTime)
	})

	t.Run("maps the store duplicate to a conflict when the snapshot races", func(t *testing.T) {
		svc, goals, events, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		// Simulate another submission landing after the eligibility snapshot
		// by inserting directly into the store.
		require.NoError(t, events.Create(&entity.Event{UserID: userID, GoalID: g.ID, DateTime: noon}))

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon.Add(time.Hour)})
		assert.ErrorIs(t, err, ErrAlreadyLoggedToday)
	})

	t.Run("publish failure does not fail the create", func(t *testing.T) {
		svc, goals, _, pub := newEventFixture(t)
		pub.err = assert.AnError
		g := seedGoal(t, goals, userID, "endurance")

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		assert.NoError(t, err)
	})
}

func TestEventEligibility(t *testing.T) {
	userID := "11111111-1111-1111-1111-111111111111"
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("eligible before logging, blocked after", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")
		svc.Now = func() time.Time { return noon }

		ok, err := svc.Eligibility(userID, g.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)

		ok, err = svc.Eligibility(userID, g.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("eligible again once the reference day rolls over", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		_, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)

		svc.Now = func() time.Time { return noon.Add(24 * time.Hour) }
		ok, err := svc.Eligibility(userID, g.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown goal errors", func(t *testing.T) {
		svc, _, _, _ := newEventFixture(t)
		_, err := svc.Eligibility(userID, "missing")
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestEventDelete(t *testing.T) {
	userID := "11111111-1111-1111-1111-111111111111"
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("removes the event and publishes", func(t *testing.T) {
		svc, goals, _, pub := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")

		e, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), e.ID))
		_, err = svc.Get(e.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)

		msgs := pub.all()
		require.Len(t, msgs, 2)
		assert.Equal(t, ScoreEventDeleted, msgs[1].Type)
		assert.Equal(t, e.ID, msgs[1].EventID)
	})

	t.Run("deleting reopens the day for logging", func(t *testing.T) {
		svc, goals, _, _ := newEventFixture(t)
		g := seedGoal(t, goals, userID, "endurance")
		svc.Now = func() time.Time { return noon }

		e, err := svc.Create(context.Background(), CreateEventInput{UserID: userID, GoalID: g.ID, DateTime: noon})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(context.Background(), e.ID))

		ok, err := svc.Eligibility(userID, g.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown event errors", func(t *testing.T) {
		svc, _, _, _ := newEventFixture(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrEventNotFound)
	})
}
