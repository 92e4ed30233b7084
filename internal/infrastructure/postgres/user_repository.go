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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, name, email, role, password_hash, avatar_path, is_active, created_at, updated_at`

// UserRepo implements the UserRepository port over PostgreSQL, including the
// append-only password history.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Name, u.Email, u.Role, u.PasswordHash,
		u.AvatarPath, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername also matches on email, so users can log in with either.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`, username)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Name, &u.Email, &u.Role, &u.PasswordHash,
		&u.AvatarPath, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update writes the profile fields; the password hash only changes through
// UpdatePassword.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, name = $3, email = $4, role = $5, avatar_path = $6,
		    is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Name, u.Email, u.Role, u.AvatarPath, u.IsActive, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Name, &u.Email, &u.Role, &u.PasswordHash,
			&u.AvatarPath, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) AppendPasswordHistory(h *entity.PasswordHistory) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO user_password_history (id, user_id, password_hash, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.UserID, h.PasswordHash, h.ChangedBy, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert password history: %w", err)
	}
	return nil
}

func (r *UserRepo) ListPasswordHistory(userID string) ([]*entity.PasswordHistory, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, password_hash, changed_by, created_at
		FROM user_password_history WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list password history: %w", err)
	}
	defer rows.Close()
	var list []*entity.PasswordHistory
	for rows.Next() {
		var h entity.PasswordHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.PasswordHash, &h.ChangedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan password history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
