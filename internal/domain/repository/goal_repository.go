package repository

import "github.com/fitleague/fitleague/internal/domain/entity"

// GoalRepository defines the interface for goal-related database operations.
// Create fails with ErrDuplicateGoalType when the user already has a goal of
// the same type. Delete removes the goal's events as well.
type GoalRepository interface {
	Create(g *entity.Goal) error
	GetByID(id string) (*entity.Goal, error)
	ListByUser(userID string) ([]entity.Goal, error)
	List() ([]entity.Goal, error)
	Update(g *entity.Goal) error
	Delete(id string) error
}
