package entity

import "time"

// Stock movement types. The ledger stores a non-negative magnitude with the
// type tag carrying the direction; it never stores signed deltas.
const (
	MovementTypeIn          = "in"
	MovementTypeOut         = "out"
	MovementTypeAdjustment  = "adjustment"
	MovementTypeTransferIn  = "transfer_in"
	MovementTypeTransferOut = "transfer_out"
)

// Adjustment reasons offered by the UI; free text is also accepted.
const (
	ReasonDamaged  = "Damaged"
	ReasonLost     = "Lost"
	ReasonExpired  = "Expired"
	ReasonDonated  = "Donated"
	ReasonMiscount = "Miscount"
	ReasonOther    = "Other"
)

// StockMovement is an append-only ledger entry for a stock quantity change.
// Rows are never updated or deleted.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int64  // magnitude, always >= 0
	Reference string // e.g. MANUAL-<unix> or a document number
	Notes     string
	UserID    string
	CreatedAt time.Time
}
