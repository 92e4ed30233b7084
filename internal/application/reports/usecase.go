package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// Cache is an optional read-through cache for dashboard counters. A nil Cache
// disables caching; a cache miss returns (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	dashboardCacheKey = "reports:dashboard"
	dashboardCacheTTL = time.Minute
)

// UseCase runs the read-only reports: sales summaries, stock valuation, low
// stock and the dashboard counters.
type UseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	cache       Cache
	now         func() time.Time
}

// NewUseCase builds the reports use case. cache may be nil.
func NewUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository, cache Cache) *UseCase {
	return &UseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// SalesSummary aggregates invoices and receipts per day over the inclusive
// date range. Days without sales do not appear.
func (uc *UseCase) SalesSummary(ctx context.Context, from, to time.Time) ([]dto.DailySalesDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailySalesDTO{
			Day:           r.Day.Format("2006-01-02"),
			DocumentCount: r.DocumentCount,
			Subtotal:      r.Subtotal,
			TaxTotal:      r.TaxTotal,
			Total:         r.Total,
		})
	}
	return out, nil
}

// SalesByCustomer aggregates sales per customer over the inclusive date
// range, highest total first. Walk-in sales (no contact) are excluded.
func (uc *UseCase) SalesByCustomer(ctx context.Context, from, to time.Time) ([]dto.CustomerSalesDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.SalesByCustomer(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CustomerSalesDTO{
			ContactID:     r.ContactID,
			ContactName:   r.ContactName,
			DocumentCount: r.DocumentCount,
			Total:         r.Total,
		})
	}
	return out, nil
}

// StockValuation values every active product's on-hand stock at cost.
func (uc *UseCase) StockValuation(ctx context.Context) ([]dto.StockValuationDTO, error) {
	rows, err := uc.reportRepo.StockValuation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockValuationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockValuationDTO{
			ProductID:     r.ProductID,
			Code:          r.Code,
			Name:          r.Name,
			StockQuantity: r.StockQuantity,
			Cost:          r.Cost,
			StockValue:    r.StockValue,
		})
	}
	return out, nil
}

// LowStock lists active products at or below their low-stock threshold.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockDTO{
			ProductID:         p.ID,
			Code:              p.Code,
			Name:              p.Name,
			StockQuantity:     p.StockQuantity,
			LowStockThreshold: p.LowStockThreshold,
			OutOfStock:        p.OutOfStock(),
		})
	}
	return out, nil
}

// Dashboard returns the headline counters, served from cache when available.
// Cache failures are not fatal: the database result is returned either way.
func (uc *UseCase) Dashboard(ctx context.Context) (*repository.DashboardCounters, error) {
	if uc.cache != nil {
		var cached repository.DashboardCounters
		if hit, err := uc.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}
	counters, err := uc.reportRepo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.SetJSON(ctx, dashboardCacheKey, counters, dashboardCacheTTL)
	}
	return counters, nil
}

// BuildSalesByCustomerXLSX renders the sales-by-customer report as an xlsx
// workbook for download.
func (uc *UseCase) BuildSalesByCustomerXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := uc.SalesByCustomer(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	const sheet = "Sheet1"

	f.SetCellValue(sheet, "A1", "Customer")
	f.SetCellValue(sheet, "B1", "Documents")
	f.SetCellValue(sheet, "C1", "Total")

	for i, r := range rows {
		line := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+line, r.ContactName)
		f.SetCellValue(sheet, "B"+line, r.DocumentCount)
		total, _ := r.Total.Float64()
		f.SetCellValue(sheet, "C"+line, total)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
