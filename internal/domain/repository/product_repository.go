package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID string
	ActiveOnly bool
	Search     string // matches code or name
	Limit      int
	Offset     int
}

// ProductRepository is the persistence port for products.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate reads the product row with a row lock; only meaningful
	// inside a transaction.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock writes the absolute stock quantity.
	UpdateStock(id string, quantity int64) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
