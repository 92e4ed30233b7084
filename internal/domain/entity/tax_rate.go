package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is a lookup row referenced by products (e.g. VAT 18%).
// Rate is a fraction: 0.18 for 18%.
type TaxRate struct {
	ID        string
	Name      string
	Rate      decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
