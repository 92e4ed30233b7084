package stock

import (
	"context"

	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, handing it
// repositories bound to that transaction. It guarantees atomicity for the
// stock ledger: either both the product update and the movement insert
// commit, or neither does.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
