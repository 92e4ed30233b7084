package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// TaxRateRepository is the persistence port for tax rates.
type TaxRateRepository interface {
	Create(rate *entity.TaxRate) error
	GetByID(id string) (*entity.TaxRate, error)
	Update(rate *entity.TaxRate) error
	List() ([]*entity.TaxRate, error)
	Delete(id string) error
}
