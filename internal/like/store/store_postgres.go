package store

import (
	"context"
	"database/sql"
	"fmt"

	"promptserver/internal/like/models"
	"promptserver/internal/platform/postgres"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
)

// Postgres persists likes in the prompt_likes table.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, l *models.Like) error {
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO prompt_likes (user_id, prompt_template_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, int64(l.UserID), int64(l.PromptID), l.CreatedAt).Scan(&l.ID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("like user %s prompt %s: %w", l.UserID, l.PromptID, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, userID id.UserID, promptID id.PromptID) error {
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx,
		`DELETE FROM prompt_likes WHERE user_id = $1 AND prompt_template_id = $2`, int64(userID), int64(promptID))
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("like user %s prompt %s: %w", userID, promptID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *Postgres) Exists(ctx context.Context, userID id.UserID, promptID id.PromptID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM prompt_likes WHERE user_id = $1 AND prompt_template_id = $2)`,
		int64(userID), int64(promptID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return exists, nil
}

func (s *Postgres) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Like, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, prompt_template_id, created_at
		FROM prompt_likes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	var out []*models.Like
	for rows.Next() {
		var (
			l                  models.Like
			rawUser, rawPrompt int64
		)
		if err := rows.Scan(&l.ID, &rawUser, &rawPrompt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		l.UserID = id.UserID(rawUser)
		l.PromptID = id.PromptID(rawPrompt)
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return out, nil
}
