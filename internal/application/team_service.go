package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/domain/entity"
	repo "github.com/fitleague/fitleague/internal/domain/repository"
)

// TeamService owns two-person teams.
type TeamService struct {
	Teams  repo.TeamRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewTeamService(teams repo.TeamRepository, users repo.UserRepository, logger *logrus.Logger) *TeamService {
	return &TeamService{Teams: teams, Users: users, Logger: logger}
}

type CreateTeamInput struct {
	UserIDOne string
	UserIDTwo string
	TeamName  string
}

func (s *TeamService) Create(ctx context.Context, in CreateTeamInput) (*entity.Team, error) {
	if in.UserIDOne == in.UserIDTwo {
		return nil, ErrSameTeamMembers
	}
	if _, err := s.Users.GetByID(in.UserIDOne); err != nil {
		return nil, ErrUserNotFound
	}
	if _, err := s.Users.GetByID(in.UserIDTwo); err != nil {
		return nil, ErrUserNotFound
	}
	t := &entity.Team{
		UserIDOne: in.UserIDOne,
		UserIDTwo: in.UserIDTwo,
		TeamName:  in.TeamName,
	}
	if err := s.Teams.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Get(teamID string) (*entity.Team, error) {
	t, err := s.Teams.GetByID(teamID)
	if err != nil {
		return nil, ErrTeamNotFound
	}
	return t, nil
}

func (s *TeamService) ListByUser(userID string) ([]entity.Team, error) {
	return s.Teams.ListByUser(userID)
}

func (s *TeamService) List() ([]entity.Team, error) {
	return s.Teams.List()
}

type UpdateTeamInput struct {
	TeamName string
}

func (s *TeamService) Update(ctx context.Context, teamID string, in UpdateTeamInput) (*entity.Team, error) {
	t, err := s.Teams.GetByID(teamID)
	if err != nil {
		return nil, ErrTeamNotFound
	}
	if in.TeamName != "" {
		t.TeamName = in.TeamName
	}
	if err := s.Teams.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	if err := s.Teams.Delete(teamID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	return nil
}
