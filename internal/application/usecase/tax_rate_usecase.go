package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// TaxRateUseCase CRUD for tax rates.
type TaxRateUseCase struct {
	repo repository.TaxRateRepository
}

// NewTaxRateUseCase builds the use case.
func NewTaxRateUseCase(repo repository.TaxRateRepository) *TaxRateUseCase {
	return &TaxRateUseCase{repo: repo}
}

func (uc *TaxRateUseCase) Create(in dto.TaxRateRequest) (*dto.TaxRateResponse, error) {
	if in.Rate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.TaxRate{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Rate:      in.Rate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toTaxRateResponse(r), nil
}

func (uc *TaxRateUseCase) Update(id string, in dto.TaxRateRequest) (*dto.TaxRateResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.Rate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	r.Name = in.Name
	r.Rate = in.Rate
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toTaxRateResponse(r), nil
}

func (uc *TaxRateUseCase) List() ([]dto.TaxRateResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaxRateResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toTaxRateResponse(r))
	}
	return out, nil
}

func (uc *TaxRateUseCase) Delete(id string) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toTaxRateResponse(r *entity.TaxRate) *dto.TaxRateResponse {
	return &dto.TaxRateResponse{
		ID:        r.ID,
		Name:      r.Name,
		Rate:      r.Rate,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
