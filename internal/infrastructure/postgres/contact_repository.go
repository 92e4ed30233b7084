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

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `id, code, name, email, phone, address, is_customer, is_supplier,
		is_active, is_tax_exempt, credit_limit, payment_terms, created_at, updated_at`

// ContactRepo implements the ContactRepository port over PostgreSQL. One
// table holds both customers and suppliers.
type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func (r *ContactRepo) Create(c *entity.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Code, c.Name, c.Email, c.Phone, c.Address,
		c.IsCustomer, c.IsSupplier, c.IsActive, c.IsTaxExempt,
		c.CreditLimit, c.PaymentTerms, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	return r.getOne(`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
}

func (r *ContactRepo) GetByCode(code string) (*entity.Contact, error) {
	return r.getOne(`SELECT `+contactColumns+` FROM contacts WHERE code = $1`, code)
}

func (r *ContactRepo) getOne(query string, arg any) (*entity.Contact, error) {
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Code, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.IsCustomer, &c.IsSupplier, &c.IsActive, &c.IsTaxExempt,
		&c.CreditLimit, &c.PaymentTerms, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepo) Update(c *entity.Contact) error {
	query := `
		UPDATE contacts
		SET code = $2, name = $3, email = $4, phone = $5, address = $6,
		    is_customer = $7, is_supplier = $8, is_active = $9, is_tax_exempt = $10,
		    credit_limit = $11, payment_terms = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Code, c.Name, c.Email, c.Phone, c.Address,
		c.IsCustomer, c.IsSupplier, c.IsActive, c.IsTaxExempt,
		c.CreditLimit, c.PaymentTerms, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) List(filter repository.ContactFilter) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE 1=1`
	args := []any{}
	n := 0
	if filter.CustomersOnly {
		query += " AND is_customer"
	}
	if filter.SuppliersOnly {
		query += " AND is_supplier"
	}
	if filter.ActiveOnly {
		query += " AND is_active"
	}
	if filter.Search != "" {
		n++
		query += fmt.Sprintf(" AND (code ILIKE $%d OR name ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Search+"%")
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.IsCustomer, &c.IsSupplier, &c.IsActive, &c.IsTaxExempt,
			&c.CreditLimit, &c.PaymentTerms, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete removes a contact; contacts referenced by documents report ErrInUse.
func (r *ContactRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
