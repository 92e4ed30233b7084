package repository

import (
	"time"

	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Type      string
	ContactID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// DocumentRepository is the persistence port for documents and their lines.
type DocumentRepository interface {
	Create(doc *entity.Document, lines []*entity.DocumentLine) error
	GetByID(id string) (*entity.Document, []*entity.DocumentLine, error)
	List(filter DocumentFilter) ([]*entity.Document, error)
	SetPaid(id string, paid bool) error
	// NextNumber increments and returns the per-type document counter; must
	// run inside the document-creation transaction.
	NextNumber(docType string) (string, error)
}
