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

var _ repository.TaxRateRepository = (*TaxRateRepo)(nil)

// TaxRateRepo implements the TaxRateRepository port over PostgreSQL.
type TaxRateRepo struct {
	q Querier
}

func NewTaxRateRepository(q Querier) *TaxRateRepo {
	return &TaxRateRepo{q: q}
}

func (r *TaxRateRepo) Create(t *entity.TaxRate) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO tax_rates (id, name, rate, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Rate, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tax rate: %w", err)
	}
	return nil
}

func (r *TaxRateRepo) GetByID(id string) (*entity.TaxRate, error) {
	var t entity.TaxRate
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, rate, is_active, created_at, updated_at
		FROM tax_rates WHERE id = $1`, id).Scan(
		&t.ID, &t.Name, &t.Rate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax rate: %w", err)
	}
	return &t, nil
}

func (r *TaxRateRepo) Update(t *entity.TaxRate) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE tax_rates SET name = $2, rate = $3, is_active = $4, updated_at = $5
		WHERE id = $1`,
		t.ID, t.Name, t.Rate, t.IsActive, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tax rate: %w", err)
	}
	return nil
}

func (r *TaxRateRepo) List() ([]*entity.TaxRate, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, rate, is_active, created_at, updated_at
		FROM tax_rates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tax rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.TaxRate
	for rows.Next() {
		var t entity.TaxRate
		if err := rows.Scan(&t.ID, &t.Name, &t.Rate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax rate: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TaxRateRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM tax_rates WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete tax rate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
