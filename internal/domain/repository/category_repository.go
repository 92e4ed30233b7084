package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
