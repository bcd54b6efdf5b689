package scoring_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/internal/domain/scoring"
)

func event(userID, goalID string, at time.Time) entity.Event {
	return entity.Event{ID: userID + "-" + goalID + "-" + at.String(), UserID: userID, GoalID: goalID, DateTime: at}
}

func TestCanLogEventForGoal(t *testing.T) {
	cal := scoring.MustCalendar("America/Denver")
	now := mustParse(t, "2024-03-10T12:00:00-06:00") // midday Mountain

	Convey("Given a goal with no events at all", t, func() {
		So(cal.CanLogEventForGoal("u1", "g1", nil, now), ShouldBeTrue)
		So(cal.CanLogEventForGoal("u1", "g1", []entity.Event{}, now), ShouldBeTrue)
	})

	Convey("Given an event already logged today for the same goal", t, func() {
		events := []entity.Event{event("u1", "g1", mustParse(t, "2024-03-10T07:15:00-06:00"))}

		Convey("The gate closes for that (user, goal)", func() {
			So(cal.CanLogEventForGoal("u1", "g1", events, now), ShouldBeFalse)
		})

		Convey("It stays closed for any instant on the same Mountain day", func() {
			lateTonight := mustParse(t, "2024-03-10T23:55:00-06:00")
			So(cal.CanLogEventForGoal("u1", "g1", events, lateTonight), ShouldBeFalse)
		})

		Convey("It reopens once the Mountain calendar day changes", func() {
			tomorrow := mustParse(t, "2024-03-11T00:05:00-06:00")
			So(cal.CanLogEventForGoal("u1", "g1", events, tomorrow), ShouldBeTrue)
		})

		Convey("A different goal of the same user is unaffected", func() {
			So(cal.CanLogEventForGoal("u1", "g2", events, now), ShouldBeTrue)
		})

		Convey("The same goal id under a different user is unaffected", func() {
			So(cal.CanLogEventForGoal("u2", "g1", events, now), ShouldBeTrue)
		})
	})

	Convey("Given an event logged yesterday", t, func() {
		events := []entity.Event{event("u1", "g1", mustParse(t, "2024-03-09T18:00:00-07:00"))}
		So(cal.CanLogEventForGoal("u1", "g1", events, now), ShouldBeTrue)
	})

	Convey("Given an event whose UTC date differs from its Mountain date", t, func() {
		// 00:10 UTC Mar 11 is still 17:10 Mountain Mar 10
		events := []entity.Event{event("u1", "g1", mustParse(t, "2024-03-11T00:10:00Z"))}

		Convey("Eligibility follows the Mountain day, not the UTC day", func() {
			So(cal.CanLogEventForGoal("u1", "g1", events, now), ShouldBeFalse)
		})
	})

	Convey("Given a mixed snapshot of many users and goals", t, func() {
		events := []entity.Event{
			event("u2", "g1", mustParse(t, "2024-03-10T08:00:00-06:00")),
			event("u1", "g2", mustParse(t, "2024-03-10T09:00:00-06:00")),
			event("u1", "g1", mustParse(t, "2024-03-09T09:00:00-06:00")),
		}

		Convey("Only an exact (user, goal, day) match closes the gate", func() {
			So(cal.CanLogEventForGoal("u1", "g1", events, now), ShouldBeTrue)
			So(cal.CanLogEventForGoal("u1", "g2", events, now), ShouldBeFalse)
			So(cal.CanLogEventForGoal("u2", "g1", events, now), ShouldBeFalse)
		})
	})
}
