package repository

import "github.com/fitleague/fitleague/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
// Delete removes the user together with their goals, events and team
// memberships in one transaction.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
}
