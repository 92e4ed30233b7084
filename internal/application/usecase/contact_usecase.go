package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// ContactUseCase CRUD for customers/suppliers.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase builds the use case.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create persists a contact. At least one of the customer/supplier flags must
// be set.
func (uc *ContactUseCase) Create(in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if !in.IsCustomer && !in.IsSupplier {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Contact{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		IsCustomer:   in.IsCustomer,
		IsSupplier:   in.IsSupplier,
		IsActive:     true,
		IsTaxExempt:  in.IsTaxExempt,
		CreditLimit:  in.CreditLimit,
		PaymentTerms: in.PaymentTerms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

func (uc *ContactUseCase) GetByID(id string) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

func (uc *ContactUseCase) Update(id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.IsCustomer != nil {
		c.IsCustomer = *in.IsCustomer
	}
	if in.IsSupplier != nil {
		c.IsSupplier = *in.IsSupplier
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.IsTaxExempt != nil {
		c.IsTaxExempt = *in.IsTaxExempt
	}
	if in.CreditLimit != nil {
		c.CreditLimit = *in.CreditLimit
	}
	if in.PaymentTerms != nil {
		c.PaymentTerms = *in.PaymentTerms
	}
	if !c.IsCustomer && !c.IsSupplier {
		return nil, domain.ErrInvalidInput
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

func (uc *ContactUseCase) List(filter repository.ContactFilter) (*dto.ContactListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.ContactListResponse{
		Items: make([]dto.ContactResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, c := range list {
		out.Items = append(out.Items, *toContactResponse(c))
	}
	return out, nil
}

func (uc *ContactUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		IsCustomer:   c.IsCustomer,
		IsSupplier:   c.IsSupplier,
		IsActive:     c.IsActive,
		IsTaxExempt:  c.IsTaxExempt,
		CreditLimit:  c.CreditLimit,
		PaymentTerms: c.PaymentTerms,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
