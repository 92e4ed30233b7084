package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContactRequest input for creating a customer/supplier.
type CreateContactRequest struct {
	Code         string          `json:"code" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Email        string          `json:"email" validate:"omitempty,email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	IsCustomer   bool            `json:"is_customer"`
	IsSupplier   bool            `json:"is_supplier"`
	IsTaxExempt  bool            `json:"is_tax_exempt"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	PaymentTerms int             `json:"payment_terms" validate:"omitempty,min=0"`
}

// UpdateContactRequest input for updating a contact.
type UpdateContactRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string          `json:"email" validate:"omitempty,email"`
	Phone        *string          `json:"phone"`
	Address      *string          `json:"address"`
	IsCustomer   *bool            `json:"is_customer"`
	IsSupplier   *bool            `json:"is_supplier"`
	IsActive     *bool            `json:"is_active"`
	IsTaxExempt  *bool            `json:"is_tax_exempt"`
	CreditLimit  *decimal.Decimal `json:"credit_limit"`
	PaymentTerms *int             `json:"payment_terms" validate:"omitempty,min=0"`
}

// ContactResponse contact output.
type ContactResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	IsCustomer   bool            `json:"is_customer"`
	IsSupplier   bool            `json:"is_supplier"`
	IsActive     bool            `json:"is_active"`
	IsTaxExempt  bool            `json:"is_tax_exempt"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	PaymentTerms int             `json:"payment_terms"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ContactListResponse paginated contact list.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
