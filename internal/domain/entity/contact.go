package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact models customers and suppliers in a single table; the role flags
// are independent so one contact can be both.
type Contact struct {
	ID           string
	Code         string // unique
	Name         string
	Email        string
	Phone        string
	Address      string
	IsCustomer   bool
	IsSupplier   bool
	IsActive     bool
	IsTaxExempt  bool
	CreditLimit  decimal.Decimal
	PaymentTerms int // days
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
