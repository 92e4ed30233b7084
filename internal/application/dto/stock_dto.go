package dto

import "time"

// AddStockRequest input for a manual stock-in.
type AddStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Notes     string `json:"notes"`
}

// AdjustStockRequest sets an absolute stock count with a reason.
type AdjustStockRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	NewQuantity int64  `json:"new_quantity" validate:"min=0"`
	Reason      string `json:"reason" validate:"required"`
}

// MovementResponse one stock ledger entry.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Reference string    `json:"reference"`
	Notes     string    `json:"notes"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse paginated ledger listing.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
