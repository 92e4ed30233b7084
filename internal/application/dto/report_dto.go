package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRangeRequest common date range for reports (inclusive).
type ReportRangeRequest struct {
	From time.Time `query:"from"`
	To   time.Time `query:"to"`
}

// DailySalesDTO one day of the sales summary.
type DailySalesDTO struct {
	Day           string          `json:"day"` // YYYY-MM-DD
	DocumentCount int64           `json:"document_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	Total         decimal.Decimal `json:"total"`
}

// CustomerSalesDTO sales aggregated per customer.
type CustomerSalesDTO struct {
	ContactID     string          `json:"contact_id"`
	ContactName   string          `json:"contact_name"`
	DocumentCount int64           `json:"document_count"`
	Total         decimal.Decimal `json:"total"`
}

// LowStockDTO a product at or below its low-stock threshold.
type LowStockDTO struct {
	ProductID         string `json:"product_id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	StockQuantity     int64  `json:"stock_quantity"`
	LowStockThreshold int64  `json:"low_stock_threshold"`
	OutOfStock        bool   `json:"out_of_stock"`
}

// StockValuationDTO one product's stock valued at cost.
type StockValuationDTO struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	StockQuantity int64           `json:"stock_quantity"`
	Cost          decimal.Decimal `json:"cost"`
	StockValue    decimal.Decimal `json:"stock_value"`
}
