package repository

import "github.com/fitleague/fitleague/internal/domain/entity"

// EventRepository defines the interface for completion-event operations.
// Events are append-only; there is no update. Create fails with
// ErrDuplicateDay when the store's (user, goal, reference-timezone day)
// uniqueness constraint rejects the row — the authoritative form of the
// once-per-day rule that the in-memory eligibility gate only advises on.
type EventRepository interface {
	Create(e *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	ListByUser(userID string) ([]entity.Event, error)
	ListByGoal(goalID string) ([]entity.Event, error)
	ListByUserAndGoal(userID, goalID string) ([]entity.Event, error)
	List() ([]entity.Event, error)
	Delete(id string) error
}
