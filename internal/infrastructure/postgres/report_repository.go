package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregate queries behind the reports. Runs on the
// pool; none of these participate in transactions.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSummary groups invoices and receipts per day over the inclusive range.
// Quotes are not sales and are excluded.
func (r *ReportRepo) SalesSummary(ctx context.Context, from, to time.Time) ([]repository.DailySalesRow, error) {
	const query = `
	SELECT
	    date_trunc('day', d.date)  AS day,
	    COUNT(*)                   AS document_count,
	    SUM(d.subtotal)            AS subtotal,
	    SUM(d.tax_total)           AS tax_total,
	    SUM(d.total)               AS total
	FROM documents d
	WHERE d.type IN ('invoice', 'receipt')
	  AND d.date BETWEEN $1 AND $2
	GROUP BY date_trunc('day', d.date)
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySalesRow
	for rows.Next() {
		var row repository.DailySalesRow
		if err := rows.Scan(&row.Day, &row.DocumentCount, &row.Subtotal, &row.TaxTotal, &row.Total); err != nil {
			return nil, fmt.Errorf("reports.SalesSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByCustomer groups sales per contact, highest total first. Walk-in
// sales carry no contact and are excluded.
func (r *ReportRepo) SalesByCustomer(ctx context.Context, from, to time.Time) ([]repository.CustomerSalesRow, error) {
	const query = `
	SELECT
	    c.id        AS contact_id,
	    c.name      AS contact_name,
	    COUNT(d.id) AS document_count,
	    SUM(d.total) AS total
	FROM documents d
	JOIN contacts c ON c.id = d.contact_id
	WHERE d.type IN ('invoice', 'receipt')
	  AND d.date BETWEEN $1 AND $2
	GROUP BY c.id, c.name
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesByCustomer: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerSalesRow
	for rows.Next() {
		var row repository.CustomerSalesRow
		if err := rows.Scan(&row.ContactID, &row.ContactName, &row.DocumentCount, &row.Total); err != nil {
			return nil, fmt.Errorf("reports.SalesByCustomer scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockValuation values every active product's on-hand stock at cost,
// highest value first.
func (r *ReportRepo) StockValuation(ctx context.Context) ([]repository.StockValuationRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.code,
	    p.name,
	    p.stock_quantity,
	    p.cost,
	    p.stock_quantity * p.cost AS stock_value
	FROM products p
	WHERE p.is_active
	ORDER BY stock_value DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.StockValuation: %w", err)
	}
	defer rows.Close()

	var results []repository.StockValuationRow
	for rows.Next() {
		var row repository.StockValuationRow
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.StockQuantity, &row.Cost, &row.StockValue); err != nil {
			return nil, fmt.Errorf("reports.StockValuation scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Dashboard collects the headline counters in one round trip. COALESCE keeps
// the sums at zero on days without sales.
func (r *ReportRepo) Dashboard(ctx context.Context) (*repository.DashboardCounters, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products WHERE is_active)                               AS product_count,
	    (SELECT COUNT(*) FROM contacts WHERE is_active)                               AS contact_count,
	    (SELECT COUNT(*) FROM products
	     WHERE is_active AND low_stock_threshold > 0
	       AND stock_quantity <= low_stock_threshold)                                 AS low_stock_count,
	    (SELECT COALESCE(SUM(total), 0) FROM documents
	     WHERE type IN ('invoice', 'receipt')
	       AND date >= date_trunc('day', now()))                                      AS sales_today,
	    (SELECT COALESCE(SUM(total), 0) FROM documents
	     WHERE type IN ('invoice', 'receipt')
	       AND date >= date_trunc('month', now()))                                    AS sales_month`

	var c repository.DashboardCounters
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.ProductCount, &c.ContactCount, &c.LowStockCount, &c.SalesToday, &c.SalesMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.Dashboard: %w", err)
	}
	return &c, nil
}
