package documents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/stock"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// UseCase creates and reads documents. Invoices and receipts deduct stock
// line by line inside the same transaction as the document insert; a failing
// line (e.g. insufficient stock) aborts the whole document. Quotes never
// touch stock.
type UseCase struct {
	txRunner    TxRunner
	stockUC     *stock.UseCase
	docRepo     repository.DocumentRepository
	productRepo repository.ProductRepository
	taxRepo     repository.TaxRateRepository
	contactRepo repository.ContactRepository
	companyRepo repository.CompanyRepository
	pdf         PDFGenerator
	now         func() time.Time
}

// NewUseCase builds the documents use case. docRepo/productRepo are the
// pool-bound repositories used for reads outside transactions.
func NewUseCase(
	txRunner TxRunner,
	stockUC *stock.UseCase,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	taxRepo repository.TaxRateRepository,
	contactRepo repository.ContactRepository,
	companyRepo repository.CompanyRepository,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		stockUC:     stockUC,
		docRepo:     docRepo,
		productRepo: productRepo,
		taxRepo:     taxRepo,
		contactRepo: contactRepo,
		companyRepo: companyRepo,
		pdf:         pdf,
		now:         time.Now,
	}
}

// Create validates the request, then inside one transaction assigns the next
// document number, deducts stock for invoice/receipt lines, and inserts the
// header with its lines.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if !entity.ValidDocumentType(in.Type) || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var contact *entity.Contact
	if in.ContactID != nil && *in.ContactID != "" {
		var err error
		contact, err = uc.contactRepo.GetByID(*in.ContactID)
		if err != nil {
			return nil, err
		}
		if contact == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := uc.now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	doc := &entity.Document{
		ID:        uuid.New().String(),
		Type:      in.Type,
		Date:      date,
		ContactID: in.ContactID,
		UserID:    userID,
		Paid:      in.Paid,
		Notes:     in.Notes,
		CreatedAt: now,
	}

	var lines []*entity.DocumentLine
	err := uc.txRunner.RunDocument(ctx, func(
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		number, err := docRepo.NextNumber(in.Type)
		if err != nil {
			return err
		}
		doc.Number = number

		subtotal := decimal.Zero
		taxTotal := decimal.Zero
		lines = lines[:0]
		for _, reqLine := range in.Lines {
			product, err := productRepo.GetByID(reqLine.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			unitPrice := product.Price
			if reqLine.UnitPrice != nil {
				unitPrice = *reqLine.UnitPrice
			}
			lineTotal := unitPrice.Mul(decimal.NewFromInt(reqLine.Quantity))

			rate := decimal.Zero
			if product.TaxRateID != nil && (contact == nil || !contact.IsTaxExempt) {
				tr, err := uc.taxRepo.GetByID(*product.TaxRateID)
				if err != nil {
					return err
				}
				if tr != nil && tr.IsActive {
					rate = tr.Rate
				}
			}

			if in.Type != entity.DocumentTypeQuote {
				if err := uc.stockUC.DeductForDocument(
					productRepo, movementRepo,
					userID, product.ID, doc.Number, reqLine.Quantity, now,
				); err != nil {
					return err
				}
			}

			lines = append(lines, &entity.DocumentLine{
				ID:          uuid.New().String(),
				DocumentID:  doc.ID,
				ProductID:   product.ID,
				Description: product.Name,
				Quantity:    reqLine.Quantity,
				UnitPrice:   unitPrice,
				TaxRate:     rate,
				LineTotal:   lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)
			taxTotal = taxTotal.Add(lineTotal.Mul(rate))
		}

		doc.Subtotal = subtotal
		doc.TaxTotal = taxTotal
		doc.Total = subtotal.Add(taxTotal)
		return docRepo.Create(doc, lines)
	})
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc, lines), nil
}

// GetByID returns a document with its lines, or nil.
func (uc *UseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, lines, err := uc.docRepo.GetByID(id)
	if err != nil || doc == nil {
		return nil, err
	}
	return toDocumentResponse(doc, lines), nil
}

// List returns document headers matching the filter.
func (uc *UseCase) List(filter repository.DocumentFilter) (*dto.DocumentListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	docs, err := uc.docRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.DocumentListResponse{
		Items: make([]dto.DocumentResponse, 0, len(docs)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, d := range docs {
		out.Items = append(out.Items, *toDocumentResponse(d, nil))
	}
	return out, nil
}

// SetPaid flips the paid flag.
func (uc *UseCase) SetPaid(id string, paid bool) error {
	doc, _, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	return uc.docRepo.SetPaid(id, paid)
}

// RenderPDF produces the printable rendering of a document.
func (uc *UseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	doc, lines, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	var contact *entity.Contact
	if doc.ContactID != nil {
		contact, err = uc.contactRepo.GetByID(*doc.ContactID)
		if err != nil {
			return nil, err
		}
	}
	products := make(map[string]*entity.Product, len(lines))
	for _, l := range lines {
		if _, ok := products[l.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			products[l.ProductID] = p
		}
	}
	return uc.pdf.GenerateDocumentPDF(ctx, doc, lines, company, contact, products)
}

func toDocumentResponse(d *entity.Document, lines []*entity.DocumentLine) *dto.DocumentResponse {
	out := &dto.DocumentResponse{
		ID:        d.ID,
		Type:      d.Type,
		Number:    d.Number,
		Date:      d.Date,
		ContactID: d.ContactID,
		UserID:    d.UserID,
		Subtotal:  d.Subtotal,
		TaxTotal:  d.TaxTotal,
		Total:     d.Total,
		Paid:      d.Paid,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.DocumentLineResponse{
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
			LineTotal:   l.LineTotal,
		})
	}
	return out
}
