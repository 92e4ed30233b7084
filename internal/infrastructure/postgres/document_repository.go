package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, type, number, date, contact_id, user_id, subtotal, tax_total, total, paid, notes, created_at`

var documentPrefixes = map[string]string{
	entity.DocumentTypeInvoice: "INV",
	entity.DocumentTypeReceipt: "RCP",
	entity.DocumentTypeQuote:   "QUO",
}

// DocumentRepo implements the DocumentRepository port over PostgreSQL.
type DocumentRepo struct {
	q Querier
}

func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create inserts the header and all lines. Callers run it inside the
// document transaction.
func (r *DocumentRepo) Create(doc *entity.Document, lines []*entity.DocumentLine) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.Number, doc.Date, doc.ContactID, doc.UserID,
		doc.Subtotal, doc.TaxTotal, doc.Total, doc.Paid, doc.Notes, doc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	for _, l := range lines {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO document_lines (id, document_id, product_id, description, quantity, unit_price, tax_rate, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, l.DocumentID, l.ProductID, l.Description, l.Quantity,
			l.UnitPrice, l.TaxRate, l.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

func (r *DocumentRepo) GetByID(id string) (*entity.Document, []*entity.DocumentLine, error) {
	var d entity.Document
	err := r.q.QueryRow(context.Background(),
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id).Scan(
		&d.ID, &d.Type, &d.Number, &d.Date, &d.ContactID, &d.UserID,
		&d.Subtotal, &d.TaxTotal, &d.Total, &d.Paid, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get document: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, document_id, product_id, description, quantity, unit_price, tax_rate, line_total
		FROM document_lines WHERE document_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get document lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(
			&l.ID, &l.DocumentID, &l.ProductID, &l.Description,
			&l.Quantity, &l.UnitPrice, &l.TaxRate, &l.LineTotal,
		); err != nil {
			return nil, nil, fmt.Errorf("scan document line: %w", err)
		}
		lines = append(lines, &l)
	}
	return &d, lines, rows.Err()
}

func (r *DocumentRepo) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Type != "" {
		n++
		query += fmt.Sprintf(" AND type = $%d", n)
		args = append(args, filter.Type)
	}
	if filter.ContactID != "" {
		n++
		query += fmt.Sprintf(" AND contact_id = $%d", n)
		args = append(args, filter.ContactID)
	}
	if filter.From != nil {
		n++
		query += fmt.Sprintf(" AND date >= $%d", n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		query += fmt.Sprintf(" AND date <= $%d", n)
		args = append(args, *filter.To)
	}
	query += fmt.Sprintf(" ORDER BY date DESC, number DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(
			&d.ID, &d.Type, &d.Number, &d.Date, &d.ContactID, &d.UserID,
			&d.Subtotal, &d.TaxTotal, &d.Total, &d.Paid, &d.Notes, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DocumentRepo) SetPaid(id string, paid bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE documents SET paid = $2 WHERE id = $1`, id, paid)
	if err != nil {
		return fmt.Errorf("set document paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextNumber bumps the per-type counter row under a row lock and formats the
// document number, e.g. INV-000042. Must run inside the document transaction
// so an aborted document never consumes a number visible to others.
func (r *DocumentRepo) NextNumber(docType string) (string, error) {
	prefix, ok := documentPrefixes[docType]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	var next int64
	err := r.q.QueryRow(context.Background(), `
		UPDATE document_counters SET last_number = last_number + 1
		WHERE doc_type = $1
		RETURNING last_number`, docType).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = r.q.QueryRow(context.Background(), `
				INSERT INTO document_counters (doc_type, last_number) VALUES ($1, 1)
				ON CONFLICT (doc_type) DO UPDATE SET last_number = document_counters.last_number + 1
				RETURNING last_number`, docType).Scan(&next)
		}
		if err != nil {
			return "", fmt.Errorf("next document number: %w", err)
		}
	}
	return fmt.Sprintf("%s-%06d", prefix, next), nil
}
