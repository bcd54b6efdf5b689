package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/domain/entity"
	repo "github.com/fitleague/fitleague/internal/domain/repository"
	"github.com/fitleague/fitleague/internal/domain/scoring"
)

// ScorePublisher abstracts the broker so tests can observe published
// score-change notifications.
type ScorePublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ScoreMessage is the payload sent to the score queue whenever the event set
// changes. The score worker consumes it and refreshes the cached leaderboard.
type ScoreMessage struct {
	Type       string    `json:"type"` // "event.logged" or "event.deleted"
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	GoalID     string    `json:"goal_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	ScoreEventLogged  = "event.logged"
	ScoreEventDeleted = "event.deleted"
)

// EventService owns completion events. Creation applies the once-per-day
// eligibility gate on a fresh snapshot; the store's uniqueness constraint
// remains the authoritative backstop against racing submissions.
type EventService struct {
	Events    repo.EventRepository
	Goals     repo.GoalRepository
	Calendar  *scoring.Calendar
	Publisher ScorePublisher
	Logger    *logrus.Logger

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewEventService(events repo.EventRepository, goals repo.GoalRepository, cal *scoring.Calendar, pub ScorePublisher, logger *logrus.Logger) *EventService {
	return &EventService{
		Events:    events,
		Goals:     goals,
		Calendar:  cal,
		Publisher: pub,
		Logger:    logger,
		Now:       time.Now,
	}
}

type CreateEventInput struct {
	UserID   string
	GoalID   string
	DateTime time.Time // zero value means "now"
	Note     string
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*entity.Event, error) {
	g, err := s.Goals.GetByID(in.GoalID)
	if err != nil {
		return nil, ErrGoalNotFound
	}
	if g.UserID != in.UserID {
		return nil, ErrGoalOwnership
	}

	at := in.DateTime
	if at.IsZero() {
		at = s.Now()
	}

	// Re-validate on a fresh snapshot right before persisting; the snapshot
	// a client checked against may be stale.
	existing, err := s.Events.ListByUserAndGoal(in.UserID, in.GoalID)
	if err != nil {
		return nil, err
	}
	if !s.Calendar.CanLogEventForGoal(in.UserID, in.GoalID, existing, at) {
		return nil, ErrAlreadyLoggedToday
	}

	e := &entity.Event{
		UserID:   in.UserID,
		GoalID:   in.GoalID,
		DateTime: at,
		Note:     in.Note,
	}
	if err := s.Events.Create(e); err != nil {
		// A concurrent submission can slip between the check above and the
		// insert; the unique index turns that into ErrDuplicateDay.
		if errors.Is(err, repo.ErrDuplicateDay) {
			return nil, ErrAlreadyLoggedToday
		}
		return nil, err
	}

	s.publish(ctx, ScoreMessage{
		Type:       ScoreEventLogged,
		EventID:    e.ID,
		UserID:     e.UserID,
		GoalID:     e.GoalID,
		OccurredAt: e.DateTime,
	})
	return e, nil
}

// Eligibility reports whether the user may log the goal right now. Advisory:
// the UI uses it to enable or disable the action.
func (s *EventService) Eligibility(userID, goalID string) (bool, error) {
	if _, err := s.Goals.GetByID(goalID); err != nil {
		return false, ErrGoalNotFound
	}
	events, err := s.Events.ListByUserAndGoal(userID, goalID)
	if err != nil {
		return false, err
	}
	return s.Calendar.CanLogEventForGoal(userID, goalID, events, s.Now()), nil
}

func (s *EventService) Get(eventID string) (*entity.Event, error) {
	e, err := s.Events.GetByID(eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return e, nil
}

func (s *EventService) ListByUser(userID string) ([]entity.Event, error) {
	return s.Events.ListByUser(userID)
}

func (s *EventService) ListByGoal(goalID string) ([]entity.Event, error) {
	return s.Events.ListByGoal(goalID)
}

func (s *EventService) List() ([]entity.Event, error) {
	return s.Events.List()
}

func (s *EventService) Delete(ctx context.Context, eventID string) error {
	e, err := s.Events.GetByID(eventID)
	if err != nil {
		return ErrEventNotFound
	}
	if err := s.Events.Delete(eventID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	s.publish(ctx, ScoreMessage{
		Type:       ScoreEventDeleted,
		EventID:    e.ID,
		UserID:     e.UserID,
		GoalID:     e.GoalID,
		OccurredAt: e.DateTime,
	})
	return nil
}

// publish is best-effort: scores are recomputed from the store, so a lost
// message only delays the cached leaderboard until its TTL expires.
func (s *EventService) publish(ctx context.Context, msg ScoreMessage) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishJSON(ctx, msg); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event_id", msg.EventID).Warn("score message publish failed")
	}
}
