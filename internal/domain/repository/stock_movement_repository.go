package repository

import (
	"time"

	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
)

// MovementFilter narrows movement listings.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository is the persistence port for the append-only stock
// ledger. There is deliberately no update or delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(filter MovementFilter) ([]*entity.StockMovement, error)
}
