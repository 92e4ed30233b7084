package documents_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtechuganda/backoffice-api/internal/application/documents"
	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/stock"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, qty int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = qty
	return nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type fakeDocRepo struct {
	docs    map[string]*entity.Document
	lines   map[string][]*entity.DocumentLine
	counter int
}

func (r *fakeDocRepo) Create(d *entity.Document, lines []*entity.DocumentLine) error {
	r.docs[d.ID] = d
	r.lines[d.ID] = lines
	return nil
}
func (r *fakeDocRepo) GetByID(id string) (*entity.Document, []*entity.DocumentLine, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, nil, nil
	}
	return d, r.lines[id], nil
}
func (r *fakeDocRepo) List(repository.DocumentFilter) ([]*entity.Document, error) {
	return nil, nil
}
func (r *fakeDocRepo) SetPaid(id string, paid bool) error {
	if d, ok := r.docs[id]; ok {
		d.Paid = paid
	}
	return nil
}
func (r *fakeDocRepo) NextNumber(docType string) (string, error) {
	r.counter++
	prefix := map[string]string{"invoice": "INV", "receipt": "RCP", "quote": "QUO"}[docType]
	return fmt.Sprintf("%s-%06d", prefix, r.counter), nil
}

type fakeTaxRepo struct{ rates map[string]*entity.TaxRate }

func (r *fakeTaxRepo) Create(*entity.TaxRate) error { return nil }
func (r *fakeTaxRepo) GetByID(id string) (*entity.TaxRate, error) {
	return r.rates[id], nil
}
func (r *fakeTaxRepo) Update(*entity.TaxRate) error       { return nil }
func (r *fakeTaxRepo) List() ([]*entity.TaxRate, error)   { return nil, nil }
func (r *fakeTaxRepo) Delete(string) error                { return nil }

type fakeContactRepo struct{ contacts map[string]*entity.Contact }

func (r *fakeContactRepo) Create(*entity.Contact) error { return nil }
func (r *fakeContactRepo) GetByID(id string) (*entity.Contact, error) {
	return r.contacts[id], nil
}
func (r *fakeContactRepo) GetByCode(string) (*entity.Contact, error) { return nil, nil }
func (r *fakeContactRepo) Update(*entity.Contact) error              { return nil }
func (r *fakeContactRepo) List(repository.ContactFilter) ([]*entity.Contact, error) {
	return nil, nil
}
func (r *fakeContactRepo) Delete(string) error { return nil }

type fakeCompanyRepo struct{}

func (r *fakeCompanyRepo) Get() (*entity.Company, error) {
	return &entity.Company{ID: 1, Name: "MTECH UGANDA", Currency: "UGX"}, nil
}
func (r *fakeCompanyRepo) Update(*entity.Company) error { return nil }

// fakeTxRunner restores product state on error, like a rolled-back
// transaction.
type fakeTxRunner struct {
	docs      *fakeDocRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) RunDocument(_ context.Context, fn func(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snapshot := make(map[string]entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		snapshot[id] = *p
	}
	movCount := len(tx.movements.movements)
	docCount := len(tx.docs.docs)
	if err := fn(tx.docs, tx.products, tx.movements); err != nil {
		for id := range tx.products.products {
			restored := snapshot[id]
			tx.products.products[id] = &restored
		}
		tx.movements.movements = tx.movements.movements[:movCount]
		if len(tx.docs.docs) != docCount {
			for id := range tx.docs.docs {
				if _, ok := snapshot[id]; !ok {
					delete(tx.docs.docs, id)
				}
			}
		}
		return err
	}
	return nil
}

func newFixture() (*documents.UseCase, *fakeProductRepo, *fakeMovementRepo, *fakeDocRepo) {
	vat := "tax-vat"
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID: "p1", Code: "SKU-001", Name: "Sugar 1kg",
			Price: decimal.NewFromInt(5000), StockQuantity: 50, TaxRateID: &vat,
		},
		"p2": {
			ID: "p2", Code: "SKU-002", Name: "Salt 500g",
			Price: decimal.NewFromInt(1500), StockQuantity: 3,
		},
	}}
	movements := &fakeMovementRepo{}
	docs := &fakeDocRepo{docs: map[string]*entity.Document{}, lines: map[string][]*entity.DocumentLine{}}
	taxes := &fakeTaxRepo{rates: map[string]*entity.TaxRate{
		vat: {ID: vat, Name: "VAT 18%", Rate: decimal.RequireFromString("0.18"), IsActive: true},
	}}
	contacts := &fakeContactRepo{contacts: map[string]*entity.Contact{
		"c1": {ID: "c1", Code: "CUST-1", Name: "Kampala Traders", IsCustomer: true, IsActive: true},
	}}
	tx := &fakeTxRunner{docs: docs, products: products, movements: movements}
	stockUC := stock.NewUseCase(nil, movements)
	uc := documents.NewUseCase(tx, stockUC, docs, products, taxes, contacts, &fakeCompanyRepo{}, nil)
	return uc, products, movements, docs
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_DeductsStockAndWritesLedger(t *testing.T) {
	uc, products, movements, _ := newFixture()

	contactID := "c1"
	out, err := uc.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type:      entity.DocumentTypeInvoice,
		ContactID: &contactID,
		Lines: []dto.DocumentLineRequest{
			{ProductID: "p1", Quantity: 4},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "INV-000001", out.Number)
	// 4 × 5000 = 20000 subtotal, 18% VAT = 3600, total 23600.
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(20000)), "subtotal %s", out.Subtotal)
	assert.True(t, out.TaxTotal.Equal(decimal.NewFromInt(3600)), "tax %s", out.TaxTotal)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(23600)), "total %s", out.Total)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(46), p.StockQuantity)

	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeOut, movements.movements[0].Type)
	assert.Equal(t, "INV-000001", movements.movements[0].Reference)
}

func TestCreateInvoice_InsufficientStockAbortsWholeDocument(t *testing.T) {
	uc, products, movements, docs := newFixture()

	_, err := uc.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type: entity.DocumentTypeInvoice,
		Lines: []dto.DocumentLineRequest{
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p2", Quantity: 10}, // only 3 on hand
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p1, _ := products.GetByID("p1")
	p2, _ := products.GetByID("p2")
	assert.Equal(t, int64(50), p1.StockQuantity, "first line must be rolled back too")
	assert.Equal(t, int64(3), p2.StockQuantity)
	assert.Empty(t, movements.movements)
	assert.Empty(t, docs.docs)
}

func TestCreateQuote_NeverTouchesStock(t *testing.T) {
	uc, products, movements, _ := newFixture()

	out, err := uc.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type: entity.DocumentTypeQuote,
		Lines: []dto.DocumentLineRequest{
			{ProductID: "p2", Quantity: 100}, // far above on-hand, still fine
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "QUO-000001", out.Number)

	p2, _ := products.GetByID("p2")
	assert.Equal(t, int64(3), p2.StockQuantity)
	assert.Empty(t, movements.movements)
}

func TestCreateDocument_TaxExemptCustomerPaysNoTax(t *testing.T) {
	exempt := "c1"
	contacts := &fakeContactRepo{contacts: map[string]*entity.Contact{
		exempt: {ID: exempt, Name: "NGO", IsCustomer: true, IsTaxExempt: true},
	}}
	vat := "tax-vat"
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Sugar 1kg", Price: decimal.NewFromInt(5000), StockQuantity: 50, TaxRateID: &vat},
	}}
	movements := &fakeMovementRepo{}
	docs := &fakeDocRepo{docs: map[string]*entity.Document{}, lines: map[string][]*entity.DocumentLine{}}
	taxes := &fakeTaxRepo{rates: map[string]*entity.TaxRate{
		vat: {ID: vat, Rate: decimal.RequireFromString("0.18"), IsActive: true},
	}}
	tx := &fakeTxRunner{docs: docs, products: products, movements: movements}
	ucExempt := documents.NewUseCase(tx, stock.NewUseCase(nil, movements), docs, products, taxes, contacts, &fakeCompanyRepo{}, nil)

	out, err := ucExempt.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type:      entity.DocumentTypeReceipt,
		ContactID: &exempt,
		Lines:     []dto.DocumentLineRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.True(t, out.TaxTotal.IsZero(), "tax-exempt contact must produce zero tax, got %s", out.TaxTotal)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(10000)))
}

func TestCreateDocument_InvalidInput(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type:  "memo",
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type: entity.DocumentTypeInvoice,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "u1", dto.CreateDocumentRequest{
		Type:  entity.DocumentTypeInvoice,
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
