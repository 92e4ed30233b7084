package documents

import (
	"context"

	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// TxRunner executes a function inside one transaction with the repositories a
// document creation needs: the header/lines insert and the stock deductions
// commit or roll back together.
type TxRunner interface {
	RunDocument(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// PDFGenerator renders a document for printing/download.
type PDFGenerator interface {
	GenerateDocumentPDF(
		ctx context.Context,
		doc *entity.Document,
		lines []*entity.DocumentLine,
		company *entity.Company,
		contact *entity.Contact, // nil for walk-in sales
		products map[string]*entity.Product,
	) ([]byte, error)
}
