package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo persists the singleton company profile row (id = 1, seeded by
// the migrations).
type CompanyRepo struct {
	q Querier
}

func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func (r *CompanyRepo) Get() (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, address, phone, email, tax_id, currency, logo_path, updated_at
		FROM company WHERE id = $1`, entity.CompanyID).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.TaxID,
		&c.Currency, &c.LogoPath, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepo) Update(c *entity.Company) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE company
		SET name = $2, address = $3, phone = $4, email = $5, tax_id = $6,
		    currency = $7, logo_path = $8, updated_at = $9
		WHERE id = $1`,
		entity.CompanyID, c.Name, c.Address, c.Phone, c.Email, c.TaxID,
		c.Currency, c.LogoPath, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
