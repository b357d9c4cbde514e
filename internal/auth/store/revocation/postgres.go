package revocation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PostgresBlacklist persists blacklisted token ids in PostgreSQL. Used when
// Redis is not configured but a database is.
type PostgresBlacklist struct {
	db    *sql.DB
	clock Clock
}

type PostgresOption func(*PostgresBlacklist)

// WithPostgresClock sets the clock function for testability.
func WithPostgresClock(clock Clock) PostgresOption {
	return func(b *PostgresBlacklist) {
		if clock != nil {
			b.clock = clock
		}
	}
}

func NewPostgresBlacklist(db *sql.DB, opts ...PostgresOption) *PostgresBlacklist {
	b := &PostgresBlacklist{
		db:    db,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *PostgresBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	query := `
		INSERT INTO token_blacklist (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO UPDATE SET
			expires_at = EXCLUDED.expires_at
	`
	if _, err := b.db.ExecContext(ctx, query, jti, b.clock().Add(ttl)); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (b *PostgresBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	var expiresAt time.Time
	err := b.db.QueryRowContext(ctx, `SELECT expires_at FROM token_blacklist WHERE jti = $1`, jti).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return b.clock().Before(expiresAt), nil
}

// PurgeExpired deletes entries whose expiry has passed.
func (b *PostgresBlacklist) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := b.db.ExecContext(ctx, `DELETE FROM token_blacklist WHERE expires_at <= $1`, b.clock())
	if err != nil {
		return 0, fmt.Errorf("purge token blacklist: %w", err)
	}
	return res.RowsAffected()
}
