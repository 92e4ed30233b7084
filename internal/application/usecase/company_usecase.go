package usecase

import (
	"time"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// CompanyUseCase profile of the singleton company row.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

func (uc *CompanyUseCase) Get() (*dto.CompanyResponse, error) {
	c, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(c), nil
}

func (uc *CompanyUseCase) Update(in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	c, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.TaxID != nil {
		c.TaxID = *in.TaxID
	}
	if in.Currency != nil {
		c.Currency = *in.Currency
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// SetLogoPath stores the logo path and returns the previous one so the old
// file can be removed.
func (uc *CompanyUseCase) SetLogoPath(path string) (previous string, err error) {
	c, err := uc.repo.Get()
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", domain.ErrNotFound
	}
	previous = c.LogoPath
	c.LogoPath = path
	c.UpdatedAt = time.Now()
	return previous, uc.repo.Update(c)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		TaxID:     c.TaxID,
		Currency:  c.Currency,
		LogoPath:  c.LogoPath,
		UpdatedAt: c.UpdatedAt,
	}
}
