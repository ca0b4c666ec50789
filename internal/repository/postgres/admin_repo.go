// internal/repository/postgres/admin_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameads-service/internal/domain/admin"
	xerrors "gameads-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `
	id, username, email, password,
	login_attempts, lock_until,
	session_id, refresh_token, last_activity,
	created_at, updated_at
`

func scanAdmin(row pgx.Row) (*admin.SuperAdmin, error) {
	var a admin.SuperAdmin
	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.Password,
		&a.LoginAttempts, &a.LockUntil,
		&a.SessionID, &a.RefreshToken, &a.LastActivity,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan super admin: %w", err)
	}
	return &a, nil
}

// Get returns the single admin record. One row ever exists; if somehow more
// do, the oldest wins.
func (r *AdminRepository) Get(ctx context.Context) (*admin.SuperAdmin, error) {
	query := `SELECT ` + adminColumns + ` FROM super_admins ORDER BY id LIMIT 1`
	return scanAdmin(r.db.QueryRow(ctx, query))
}

// Create inserts the admin record on first boot.
func (r *AdminRepository) Create(ctx context.Context, a *admin.SuperAdmin) error {
	query := `
		INSERT INTO super_admins (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, login_attempts, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, a.Username, a.Email, a.Password).
		Scan(&a.ID, &a.LoginAttempts, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}
	return nil
}

// Save persists every mutable field of the record in one statement. Login,
// refresh and logout must all complete this write before responding.
func (r *AdminRepository) Save(ctx context.Context, a *admin.SuperAdmin) error {
	query := `
		UPDATE super_admins
		SET username = $1, email = $2, password = $3,
		    login_attempts = $4, lock_until = $5,
		    session_id = $6, refresh_token = $7, last_activity = $8,
		    updated_at = $9
		WHERE id = $10
	`

	now := time.Now()
	_, err := r.db.Exec(ctx, query,
		a.Username, a.Email, a.Password,
		a.LoginAttempts, a.LockUntil,
		a.SessionID, a.RefreshToken, a.LastActivity,
		now, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save super admin: %w", err)
	}
	a.UpdatedAt = now
	return nil
}
