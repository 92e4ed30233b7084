package reports_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/reports"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

type fakeReportRepo struct {
	dashboardCalls int
	customers      []repository.CustomerSalesRow
}

func (r *fakeReportRepo) SalesSummary(context.Context, time.Time, time.Time) ([]repository.DailySalesRow, error) {
	return []repository.DailySalesRow{
		{
			Day:           time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			DocumentCount: 3,
			Subtotal:      decimal.NewFromInt(30000),
			TaxTotal:      decimal.NewFromInt(5400),
			Total:         decimal.NewFromInt(35400),
		},
	}, nil
}

func (r *fakeReportRepo) SalesByCustomer(context.Context, time.Time, time.Time) ([]repository.CustomerSalesRow, error) {
	return r.customers, nil
}

func (r *fakeReportRepo) StockValuation(context.Context) ([]repository.StockValuationRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) Dashboard(context.Context) (*repository.DashboardCounters, error) {
	r.dashboardCalls++
	return &repository.DashboardCounters{
		ProductCount: 12,
		SalesToday:   decimal.NewFromInt(50000),
	}, nil
}

type fakeProductRepo struct{ low []*entity.Product }

func (r *fakeProductRepo) Create(*entity.Product) error                { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                { return nil }
func (r *fakeProductRepo) UpdateStock(string, int64) error             { return nil }
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return r.low, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeCache struct{ entries map[string][]byte }

func (c *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func TestDashboard_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := &fakeCache{entries: map[string][]byte{}}
	uc := reports.NewUseCase(repo, &fakeProductRepo{}, cache)

	first, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), first.ProductCount)
	assert.Equal(t, 1, repo.dashboardCalls)

	second, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), second.ProductCount)
	assert.True(t, second.SalesToday.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 1, repo.dashboardCalls, "second call must not hit the database")
}

func TestDashboard_NilCacheAlwaysQueries(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewUseCase(repo, &fakeProductRepo{}, nil)

	_, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	_, err = uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.dashboardCalls)
}

func TestSalesSummary_RejectsInvertedRange(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &fakeProductRepo{}, nil)

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err := uc.SalesSummary(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesSummary_FormatsDay(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &fakeProductRepo{}, nil)

	out, err := uc.SalesSummary(context.Background(), time.Time{}, time.Now())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-08-01", out[0].Day)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(35400)))
}

func TestLowStock_MapsThresholds(t *testing.T) {
	products := &fakeProductRepo{low: []*entity.Product{
		{ID: "p1", Code: "SKU-001", Name: "Sugar 1kg", StockQuantity: 2, LowStockThreshold: 5},
		{ID: "p2", Code: "SKU-002", Name: "Salt 500g", StockQuantity: 0, LowStockThreshold: 10},
	}}
	uc := reports.NewUseCase(&fakeReportRepo{}, products, nil)

	out, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.False(t, out[0].OutOfStock)
	assert.True(t, out[1].OutOfStock)
}

func TestBuildSalesByCustomerXLSX(t *testing.T) {
	repo := &fakeReportRepo{customers: []repository.CustomerSalesRow{
		{ContactID: "c1", ContactName: "Kampala Traders", DocumentCount: 4, Total: decimal.NewFromInt(118000)},
		{ContactID: "c2", ContactName: "Entebbe Stores", DocumentCount: 1, Total: decimal.NewFromInt(23600)},
	}}
	uc := reports.NewUseCase(repo, &fakeProductRepo{}, nil)

	raw, err := uc.BuildSalesByCustomerXLSX(context.Background(), time.Time{}, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Customer", header)

	name, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Kampala Traders", name)

	count, err := f.GetCellValue("Sheet1", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}
