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

// PriceListUseCase CRUD for price lists and their per-product overrides.
type PriceListUseCase struct {
	repo        repository.PriceListRepository
	productRepo repository.ProductRepository
}

// NewPriceListUseCase builds the use case.
func NewPriceListUseCase(repo repository.PriceListRepository, productRepo repository.ProductRepository) *PriceListUseCase {
	return &PriceListUseCase{repo: repo, productRepo: productRepo}
}

func (uc *PriceListUseCase) Create(in dto.PriceListRequest) (*dto.PriceListResponse, error) {
	now := time.Now()
	l := &entity.PriceList{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return toPriceListResponse(l), nil
}

func (uc *PriceListUseCase) Update(id string, in dto.PriceListRequest) (*dto.PriceListResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	l.Name = in.Name
	l.Description = in.Description
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(l); err != nil {
		return nil, err
	}
	return toPriceListResponse(l), nil
}

func (uc *PriceListUseCase) List() ([]dto.PriceListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceListResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toPriceListResponse(l))
	}
	return out, nil
}

func (uc *PriceListUseCase) Delete(id string) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// SetItem creates or updates one product's override price within a list.
func (uc *PriceListUseCase) SetItem(priceListID string, in dto.PriceListItemRequest) error {
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	l, err := uc.repo.GetByID(priceListID)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	p, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpsertItem(&entity.PriceListItem{
		ID:          uuid.New().String(),
		PriceListID: priceListID,
		ProductID:   in.ProductID,
		Price:       in.Price,
		UpdatedAt:   time.Now(),
	})
}

func (uc *PriceListUseCase) ListItems(priceListID string) ([]dto.PriceListItemResponse, error) {
	items, err := uc.repo.ListItems(priceListID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PriceListItemResponse{
			ProductID: it.ProductID,
			Price:     it.Price,
			UpdatedAt: it.UpdatedAt,
		})
	}
	return out, nil
}

func (uc *PriceListUseCase) DeleteItem(priceListID, productID string) error {
	return uc.repo.DeleteItem(priceListID, productID)
}

func toPriceListResponse(l *entity.PriceList) *dto.PriceListResponse {
	return &dto.PriceListResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
