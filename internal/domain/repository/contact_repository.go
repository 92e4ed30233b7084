package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// ContactFilter narrows contact listings.
type ContactFilter struct {
	CustomersOnly bool
	SuppliersOnly bool
	ActiveOnly    bool
	Search        string // matches code or name
	Limit         int
	Offset        int
}

// ContactRepository is the persistence port for customers/suppliers.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	GetByCode(code string) (*entity.Contact, error)
	Update(contact *entity.Contact) error
	List(filter ContactFilter) ([]*entity.Contact, error)
	Delete(id string) error
}
