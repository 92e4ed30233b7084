package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for creating a product.
type CreateProductRequest struct {
	Code              string          `json:"code" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	CategoryID        *string         `json:"category_id"`
	TaxRateID         *string         `json:"tax_rate_id"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	LowStockThreshold int64           `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// UpdateProductRequest input for updating a product. Stock quantity is
// deliberately absent; it only changes through the stock ledger.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	CategoryID        *string          `json:"category_id"`
	TaxRateID         *string          `json:"tax_rate_id"`
	Price             *decimal.Decimal `json:"price"`
	Cost              *decimal.Decimal `json:"cost"`
	LowStockThreshold *int64           `json:"low_stock_threshold" validate:"omitempty,min=0"`
	IsActive          *bool            `json:"is_active"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	CategoryID        *string         `json:"category_id"`
	TaxRateID         *string         `json:"tax_rate_id"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	StockQuantity     int64           `json:"stock_quantity"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	OutOfStock        bool            `json:"out_of_stock"`
	ImagePath         string          `json:"image_path,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
