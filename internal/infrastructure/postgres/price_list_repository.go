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

var _ repository.PriceListRepository = (*PriceListRepo)(nil)

// PriceListRepo implements the PriceListRepository port over PostgreSQL.
type PriceListRepo struct {
	q Querier
}

func NewPriceListRepository(q Querier) *PriceListRepo {
	return &PriceListRepo{q: q}
}

func (r *PriceListRepo) Create(l *entity.PriceList) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO price_lists (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.Name, l.Description, l.IsActive, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price list: %w", err)
	}
	return nil
}

func (r *PriceListRepo) GetByID(id string) (*entity.PriceList, error) {
	var l entity.PriceList
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM price_lists WHERE id = $1`, id).Scan(
		&l.ID, &l.Name, &l.Description, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list: %w", err)
	}
	return &l, nil
}

func (r *PriceListRepo) Update(l *entity.PriceList) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE price_lists SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`,
		l.ID, l.Name, l.Description, l.IsActive, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update price list: %w", err)
	}
	return nil
}

func (r *PriceListRepo) List() ([]*entity.PriceList, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM price_lists ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list price lists: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceList
	for rows.Next() {
		var l entity.PriceList
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete removes the list; items go with it via ON DELETE CASCADE.
func (r *PriceListRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM price_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price list: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PriceListRepo) UpsertItem(item *entity.PriceListItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO price_list_items (id, price_list_id, product_id, price, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (price_list_id, product_id)
		DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at`,
		item.ID, item.PriceListID, item.ProductID, item.Price, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert price list item: %w", err)
	}
	return nil
}

func (r *PriceListRepo) ListItems(priceListID string) ([]*entity.PriceListItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, price_list_id, product_id, price, updated_at
		FROM price_list_items WHERE price_list_id = $1 ORDER BY product_id`, priceListID)
	if err != nil {
		return nil, fmt.Errorf("list price list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceListItem
	for rows.Next() {
		var it entity.PriceListItem
		if err := rows.Scan(&it.ID, &it.PriceListID, &it.ProductID, &it.Price, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *PriceListRepo) DeleteItem(priceListID, productID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM price_list_items WHERE price_list_id = $1 AND product_id = $2`,
		priceListID, productID)
	if err != nil {
		return fmt.Errorf("delete price list item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
