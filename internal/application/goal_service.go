package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/domain/entity"
	repo "github.com/fitleague/fitleague/internal/domain/repository"
)

// GoalService owns goal CRUD. The one-goal-per-(user, type) invariant is
// enforced here and backed by the store's unique index.
type GoalService struct {
	Goals  repo.GoalRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewGoalService(goals repo.GoalRepository, users repo.UserRepository, logger *logrus.Logger) *GoalService {
	return &GoalService{Goals: goals, Users: users, Logger: logger}
}

type CreateGoalInput struct {
	UserID          string
	GoalName        string
	GoalDescription string
	GoalType        string
}

func (s *GoalService) Create(ctx context.Context, in CreateGoalInput) (*entity.Goal, error) {
	if _, err := s.Users.GetByID(in.UserID); err != nil {
		return nil, ErrUserNotFound
	}
	g := &entity.Goal{
		UserID:          in.UserID,
		GoalName:        in.GoalName,
		GoalDescription: in.GoalDescription,
		GoalType:        in.GoalType,
	}
	if err := s.Goals.Create(g); err != nil {
		if errors.Is(err, repo.ErrDuplicateGoalType) {
			return nil, ErrGoalTypeTaken
		}
		return nil, err
	}
	return g, nil
}

func (s *GoalService) Get(goalID string) (*entity.Goal, error) {
	g, err := s.Goals.GetByID(goalID)
	if err != nil {
		return nil, ErrGoalNotFound
	}
	return g, nil
}

func (s *GoalService) ListByUser(userID string) ([]entity.Goal, error) {
	return s.Goals.ListByUser(userID)
}

func (s *GoalService) List() ([]entity.Goal, error) {
	return s.Goals.List()
}

type UpdateGoalInput struct {
	GoalName        string
	GoalDescription string
	GoalType        string
	IsCompleted     *bool
}

func (s *GoalService) Update(ctx context.Context, goalID string, in UpdateGoalInput) (*entity.Goal, error) {
	g, err := s.Goals.GetByID(goalID)
	if err != nil {
		return nil, ErrGoalNotFound
	}
	if in.GoalName != "" {
		g.GoalName = in.GoalName
	}
	if in.GoalDescription != "" {
		g.GoalDescription = in.GoalDescription
	}
	if in.GoalType != "" {
		g.GoalType = in.GoalType
	}
	if in.IsCompleted != nil {
		g.IsCompleted = *in.IsCompleted
	}
	if err := s.Goals.Update(g); err != nil {
		if errors.Is(err, repo.ErrDuplicateGoalType) {
			return nil, ErrGoalTypeTaken
		}
		return nil, err
	}
	return g, nil
}

// Complete marks the goal as achieved. Completed goals remain loggable; the
// flag only drives profile progress display.
func (s *GoalService) Complete(ctx context.Context, goalID string) (*entity.Goal, error) {
	done := true
	return s.Update(ctx, goalID, UpdateGoalInput{IsCompleted: &done})
}

// Delete removes the goal and, through the repository's cascade, its events.
func (s *GoalService) Delete(ctx context.Context, goalID string) error {
	if err := s.Goals.Delete(goalID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}
