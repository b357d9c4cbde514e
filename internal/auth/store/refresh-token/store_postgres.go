package refreshtoken

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			token = EXCLUDED.token,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at
	`
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, query, int64(token.UserID), token.Token, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID id.UserID) (*models.RefreshToken, error) {
	token := models.RefreshToken{UserID: userID}
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT token, expires_at, created_at FROM refresh_tokens WHERE user_id = $1`, int64(userID),
	).Scan(&token.Token, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("refresh token for user %s: %w", userID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &token, nil
}

func (s *PostgresStore) DeleteByUserID(ctx context.Context, userID id.UserID) error {
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, int64(userID))
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
