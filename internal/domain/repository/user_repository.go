package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// UserRepository is the persistence port for users and their password audit
// trail.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdatePassword sets the hash on the user row only; history is a
	// separate append.
	UpdatePassword(id, passwordHash string) error
	List() ([]*entity.User, error)
	AppendPasswordHistory(h *entity.PasswordHistory) error
	ListPasswordHistory(userID string) ([]*entity.PasswordHistory, error)
}
