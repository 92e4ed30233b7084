package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// CompanyRepository is the persistence port for the singleton company row.
type CompanyRepository interface {
	Get() (*entity.Company, error)
	Update(company *entity.Company) error
}
