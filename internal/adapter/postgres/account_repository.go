package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

// AccountRepository implements port.AccountRepository using pgxpool for
// PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create stores a new ad account and returns it with the generated id and
// timestamps.
func (r *AccountRepository) Create(ctx context.Context, acc domain.AdAccount) (domain.AdAccount, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO ad_accounts
(user_id, name, platform, account_id, access_token, refresh_token, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now())
RETURNING id, created_at, updated_at`,
		acc.UserID, acc.Name, acc.Platform, acc.AccountID, acc.AccessToken, acc.RefreshToken, acc.IsActive).
		Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	return acc, err
}

// GetByID returns the account with the given id, or nil when missing.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.AdAccount, error) {
	var acc domain.AdAccount
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, name, platform, account_id, access_token, refresh_token, is_active, created_at, updated_at
FROM ad_accounts WHERE id = $1`, id).
		Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Platform, &acc.AccountID, &acc.AccessToken, &acc.RefreshToken, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// ListByUser returns all accounts owned by the user, newest first.
func (r *AccountRepository) ListByUser(ctx context.Context, userID int64) ([]domain.AdAccount, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name, platform, account_id, access_token, refresh_token, is_active, created_at, updated_at
FROM ad_accounts WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdAccount, error) {
		var acc domain.AdAccount
		err := row.Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Platform, &acc.AccountID, &acc.AccessToken, &acc.RefreshToken, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt)
		return acc, err
	})
}

// Delete removes the account with the given id.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ad_accounts WHERE id = $1`, id)
	return err
}
