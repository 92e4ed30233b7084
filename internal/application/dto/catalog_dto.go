package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest create/update input for a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CategoryResponse category output.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaxRateRequest create/update input for a tax rate.
type TaxRateRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Rate     decimal.Decimal `json:"rate"`
	IsActive *bool           `json:"is_active"`
}

// TaxRateResponse tax rate output.
type TaxRateResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PriceListRequest create/update input for a price list.
type PriceListRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// PriceListResponse price list output.
type PriceListResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PriceListItemRequest sets one product's price within a list.
type PriceListItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Price     decimal.Decimal `json:"price"`
}

// PriceListItemResponse one override row.
type PriceListItemResponse struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}
