package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtechuganda/backoffice-api/internal/application/stock"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	failWith  error // when set, Create fails after the product update ran
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}

// fakeTxRunner mimics transactional semantics: it snapshots product state
// before fn and restores it when fn returns an error, the way a real
// transaction rolls back.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snapshot := make(map[string]entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		snapshot[id] = *p
	}
	if err := fn(tx.products, tx.movements); err != nil {
		for id := range tx.products.products {
			restored := snapshot[id]
			tx.products.products[id] = &restored
		}
		return err
	}
	return nil
}

func newFixture(initialStock int64) (*stock.UseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo(&entity.Product{
		ID:            "p1",
		Code:          "SKU-001",
		Name:          "Sugar 1kg",
		StockQuantity: initialStock,
	})
	movements := &fakeMovementRepo{}
	uc := stock.NewUseCase(&fakeTxRunner{products: products, movements: movements}, movements)
	return uc, products, movements
}

// ──────────────────────────────────────────────────────────────────────────────
// AddStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock_IncreasesQuantityAndWritesLedgerRow(t *testing.T) {
	uc, products, movements := newFixture(50)

	err := uc.AddStock(context.Background(), "u1", "p1", 10, "restock")
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(60), p.StockQuantity)

	require.Len(t, movements.movements, 1)
	mov := movements.movements[0]
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, int64(10), mov.Quantity)
	assert.Equal(t, "u1", mov.UserID)
	assert.Contains(t, mov.Reference, "MANUAL-")
}

func TestAddStock_RejectsNonPositiveQuantity(t *testing.T) {
	uc, products, movements := newFixture(50)

	for _, qty := range []int64{0, -5} {
		err := uc.AddStock(context.Background(), "u1", "p1", qty, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity %d must be rejected", qty)
	}

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(50), p.StockQuantity, "no write may happen on validation failure")
	assert.Empty(t, movements.movements)
}

func TestAddStock_UnknownProduct(t *testing.T) {
	uc, _, movements := newFixture(50)

	err := uc.AddStock(context.Background(), "u1", "missing", 10, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movements.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

// Spec scenario: stock 50, adjust to 30 with reason "Damaged" -> quantity 30,
// one "out" movement of magnitude 20 whose notes contain the reason.
func TestAdjustStock_Downward(t *testing.T) {
	uc, products, movements := newFixture(50)

	err := uc.AdjustStock(context.Background(), "u1", "p1", 30, entity.ReasonDamaged)
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(30), p.StockQuantity)

	require.Len(t, movements.movements, 1)
	mov := movements.movements[0]
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, int64(20), mov.Quantity, "ledger stores the magnitude, never a signed delta")
	assert.Contains(t, mov.Notes, "Damaged")
	assert.Contains(t, mov.Notes, "50")
	assert.Contains(t, mov.Notes, "30")
}

func TestAdjustStock_Upward(t *testing.T) {
	uc, products, movements := newFixture(50)

	err := uc.AdjustStock(context.Background(), "u1", "p1", 80, entity.ReasonMiscount)
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(80), p.StockQuantity)

	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, movements.movements[0].Type)
	assert.Equal(t, int64(30), movements.movements[0].Quantity)
}

func TestAdjustStock_ZeroDeltaWritesNoLedgerRow(t *testing.T) {
	uc, products, movements := newFixture(50)

	err := uc.AdjustStock(context.Background(), "u1", "p1", 50, entity.ReasonOther)
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(50), p.StockQuantity)
	assert.Empty(t, movements.movements, "a no-op adjustment must not append to the ledger")
}

func TestAdjustStock_NotIdempotentAcrossStockChanges(t *testing.T) {
	uc, _, movements := newFixture(50)

	require.NoError(t, uc.AdjustStock(context.Background(), "u1", "p1", 30, entity.ReasonLost))
	// Same target again: delta is now zero, so no second row.
	require.NoError(t, uc.AdjustStock(context.Background(), "u1", "p1", 30, entity.ReasonLost))
	// But after an interleaved change each call computes its own delta.
	require.NoError(t, uc.AddStock(context.Background(), "u1", "p1", 5, ""))
	require.NoError(t, uc.AdjustStock(context.Background(), "u1", "p1", 30, entity.ReasonLost))

	assert.Len(t, movements.movements, 3)
}

func TestAdjustStock_RejectsNegativeTargetAndEmptyReason(t *testing.T) {
	uc, _, _ := newFixture(50)

	assert.ErrorIs(t, uc.AdjustStock(context.Background(), "u1", "p1", -1, "x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AdjustStock(context.Background(), "u1", "p1", 10, ""), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicity
// ──────────────────────────────────────────────────────────────────────────────

// When the ledger insert fails after the product update already ran, the
// transaction rolls back and the quantity must be back at its pre-call value.
func TestStockMutation_RollsBackOnLedgerFailure(t *testing.T) {
	uc, products, movements := newFixture(50)
	movements.failWith = errors.New("insert failed")

	err := uc.AddStock(context.Background(), "u1", "p1", 10, "")
	require.Error(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(50), p.StockQuantity, "partial effect must not be visible")
	assert.Empty(t, movements.movements)

	err = uc.AdjustStock(context.Background(), "u1", "p1", 5, entity.ReasonExpired)
	require.Error(t, err)

	p, _ = products.GetByID("p1")
	assert.Equal(t, int64(50), p.StockQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeductForDocument
// ──────────────────────────────────────────────────────────────────────────────

func TestDeductForDocument_WritesOutMovementWithDocumentReference(t *testing.T) {
	uc, products, movements := newFixture(50)

	err := (&fakeTxRunner{products: products, movements: movements}).Run(
		context.Background(),
		func(pr repository.ProductRepository, mr repository.StockMovementRepository) error {
			return uc.DeductForDocument(pr, mr, "u1", "p1", "INV-000007", 8, time.Unix(1700000000, 0))
		},
	)
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(42), p.StockQuantity)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, "INV-000007", movements.movements[0].Reference)
	assert.Equal(t, entity.MovementTypeOut, movements.movements[0].Type)
}

func TestDeductForDocument_InsufficientStock(t *testing.T) {
	uc, products, movements := newFixture(5)

	err := (&fakeTxRunner{products: products, movements: movements}).Run(
		context.Background(),
		func(pr repository.ProductRepository, mr repository.StockMovementRepository) error {
			return uc.DeductForDocument(pr, mr, "u1", "p1", "INV-000008", 8, time.Unix(1700000000, 0))
		},
	)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(5), p.StockQuantity, "rollback must restore the original quantity")
	assert.Empty(t, movements.movements)
}
