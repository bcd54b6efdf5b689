package repository

import "github.com/fitleague/fitleague/internal/domain/entity"

// TeamRepository defines the interface for team-related database operations.
type TeamRepository interface {
	Create(t *entity.Team) error
	GetByID(id string) (*entity.Team, error)
	ListByUser(userID string) ([]entity.Team, error)
	List() ([]entity.Team, error)
	Update(t *entity.Team) error
	Delete(id string) error
}
