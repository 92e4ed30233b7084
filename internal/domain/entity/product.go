package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. StockQuantity is the current on-hand count and
// is only mutated through the stock ledger; any quantity at or below zero is
// reported as out of stock.
type Product struct {
	ID                string
	Code              string // unique
	Name              string
	Description       string
	CategoryID        *string
	TaxRateID         *string
	Price             decimal.Decimal // selling price, UGX
	Cost              decimal.Decimal
	StockQuantity     int64
	LowStockThreshold int64
	ImagePath         string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OutOfStock reports whether the product should be listed as out of stock.
func (p *Product) OutOfStock() bool {
	return p.StockQuantity <= 0
}

// LowStock reports whether the product is at or below its threshold.
func (p *Product) LowStock() bool {
	return p.LowStockThreshold > 0 && p.StockQuantity <= p.LowStockThreshold
}
