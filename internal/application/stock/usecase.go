package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// UseCase applies stock mutations and records them in the append-only
// movement ledger. Each mutation locks the product row (SELECT ... FOR
// UPDATE) inside a single transaction, so the quantity and the ledger stay
// reconcilable and concurrent adjustments cannot overwrite each other.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	now          func() time.Time
}

// NewUseCase builds the stock use case. movementRepo is the pool-bound
// repository used for read-only listings.
func NewUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo, now: time.Now}
}

// AddStock increases a product's stock by quantity and writes an "in"
// movement with a generated MANUAL-<unix> reference. quantity must be
// positive; both writes share one transaction.
func (uc *UseCase) AddStock(ctx context.Context, userID, productID string, quantity int64, notes string) error {
	if productID == "" || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	now := uc.now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateStock(productID, product.StockQuantity+quantity); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      entity.MovementTypeIn,
			Quantity:  quantity,
			Reference: manualReference(now),
			Notes:     notes,
			UserID:    userID,
			CreatedAt: now,
		}
		return movementRepo.Create(mov)
	})
}

// AdjustStock sets a product's stock to an absolute non-negative quantity and
// records the delta as an "in" or "out" movement whose notes carry the reason
// and the before/after values. A zero delta succeeds without writing a ledger
// row; the product row still gets its timestamp refreshed.
func (uc *UseCase) AdjustStock(ctx context.Context, userID, productID string, newQuantity int64, reason string) error {
	if productID == "" || newQuantity < 0 || reason == "" {
		return domain.ErrInvalidInput
	}
	now := uc.now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		diff := newQuantity - product.StockQuantity
		if err := productRepo.UpdateStock(productID, newQuantity); err != nil {
			return err
		}
		if diff == 0 {
			return nil
		}
		movType := entity.MovementTypeIn
		magnitude := diff
		if diff < 0 {
			movType = entity.MovementTypeOut
			magnitude = -diff
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      movType,
			Quantity:  magnitude,
			Reference: manualReference(now),
			Notes:     fmt.Sprintf("%s (adjusted %d -> %d)", reason, product.StockQuantity, newQuantity),
			UserID:    userID,
			CreatedAt: now,
		}
		return movementRepo.Create(mov)
	})
}

// DeductForDocument removes quantity from a product's stock and writes an
// "out" movement referencing the document number. Runs on the caller's
// transaction-bound repositories so the deduction commits or rolls back with
// the document itself.
func (uc *UseCase) DeductForDocument(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	userID, productID, docNumber string,
	quantity int64,
	now time.Time,
) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.StockQuantity < quantity {
		return domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStock(productID, product.StockQuantity-quantity); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      entity.MovementTypeOut,
		Quantity:  quantity,
		Reference: docNumber,
		Notes:     "document " + docNumber,
		UserID:    userID,
		CreatedAt: now,
	}
	return movementRepo.Create(mov)
}

// ListMovements returns ledger entries matching the filter, newest first.
func (uc *UseCase) ListMovements(filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	movements, err := uc.movementRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reference: m.Reference,
			Notes:     m.Notes,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func manualReference(now time.Time) string {
	return fmt.Sprintf("MANUAL-%d", now.Unix())
}
