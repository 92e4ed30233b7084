package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document types. Invoices and receipts deduct stock on creation; quotes
// never touch stock.
const (
	DocumentTypeInvoice = "invoice"
	DocumentTypeReceipt = "receipt"
	DocumentTypeQuote   = "quote"
)

// ValidDocumentType reports whether s is a known document type.
func ValidDocumentType(s string) bool {
	return s == DocumentTypeInvoice || s == DocumentTypeReceipt || s == DocumentTypeQuote
}

// Document is a sale/invoice/quote header.
type Document struct {
	ID        string
	Type      string
	Number    string // e.g. INV-000042, generated per type
	Date      time.Time
	ContactID *string
	UserID    string
	Subtotal  decimal.Decimal
	TaxTotal  decimal.Decimal
	Total     decimal.Decimal
	Paid      bool
	Notes     string
	CreatedAt time.Time
}

// DocumentLine is one product line on a document.
type DocumentLine struct {
	ID          string
	DocumentID  string
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // fraction applied to the line
	LineTotal   decimal.Decimal // quantity * unit price, before tax
}
