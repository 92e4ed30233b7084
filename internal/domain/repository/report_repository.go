package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesRow is one day of aggregated sales.
type DailySalesRow struct {
	Day           time.Time
	DocumentCount int64
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
}

// CustomerSalesRow aggregates sales per customer.
type CustomerSalesRow struct {
	ContactID     string
	ContactName   string
	DocumentCount int64
	Total         decimal.Decimal
}

// StockValuationRow values one product's on-hand stock at cost.
type StockValuationRow struct {
	ProductID     string
	Code          string
	Name          string
	StockQuantity int64
	Cost          decimal.Decimal
	StockValue    decimal.Decimal
}

// DashboardCounters are the headline numbers on the dashboard.
type DashboardCounters struct {
	ProductCount  int64           `json:"product_count"`
	ContactCount  int64           `json:"contact_count"`
	LowStockCount int64           `json:"low_stock_count"`
	SalesToday    decimal.Decimal `json:"sales_today"`
	SalesMonth    decimal.Decimal `json:"sales_month"`
}

// ReportRepository runs the read-only aggregate queries behind reports.
type ReportRepository interface {
	SalesSummary(ctx context.Context, from, to time.Time) ([]DailySalesRow, error)
	SalesByCustomer(ctx context.Context, from, to time.Time) ([]CustomerSalesRow, error)
	StockValuation(ctx context.Context) ([]StockValuationRow, error)
	Dashboard(ctx context.Context) (*DashboardCounters, error)
}
