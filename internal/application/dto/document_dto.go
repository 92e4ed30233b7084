package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest one line of a document being created.
type DocumentLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	// UnitPrice overrides the product price when set (e.g. price list).
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateDocumentRequest input for creating an invoice/receipt/quote.
type CreateDocumentRequest struct {
	Type      string                `json:"type" validate:"required,oneof=invoice receipt quote"`
	ContactID *string               `json:"contact_id"`
	Date      *time.Time            `json:"date"`
	Paid      bool                  `json:"paid"`
	Notes     string                `json:"notes"`
	Lines     []DocumentLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// DocumentLineResponse one line of a document.
type DocumentLineResponse struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// DocumentResponse document header plus lines.
type DocumentResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Number    string                 `json:"number"`
	Date      time.Time              `json:"date"`
	ContactID *string                `json:"contact_id"`
	UserID    string                 `json:"user_id"`
	Subtotal  decimal.Decimal        `json:"subtotal"`
	TaxTotal  decimal.Decimal        `json:"tax_total"`
	Total     decimal.Decimal        `json:"total"`
	Paid      bool                   `json:"paid"`
	Notes     string                 `json:"notes"`
	CreatedAt time.Time              `json:"created_at"`
	Lines     []DocumentLineResponse `json:"lines,omitempty"`
}

// DocumentListResponse paginated document list (headers only).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
