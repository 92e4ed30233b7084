package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceList is a named set of per-product price overrides.
type PriceList struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceListItem overrides one product's price within a list.
type PriceListItem struct {
	ID          string
	PriceListID string
	ProductID   string
	Price       decimal.Decimal
	UpdatedAt   time.Time
}
