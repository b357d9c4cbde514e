package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"promptserver/internal/favorite/models"
	"promptserver/internal/platform/postgres"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
)

// Postgres persists favorites in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, f *models.Favorite) error {
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO favorites (user_id, prompt_template_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, int64(f.UserID), int64(f.PromptID), f.CreatedAt).Scan(&f.ID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("favorite user %s prompt %s: %w", f.UserID, f.PromptID, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, userID id.UserID, promptID id.PromptID) error {
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND prompt_template_id = $2`, int64(userID), int64(promptID))
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("favorite user %s prompt %s: %w", userID, promptID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *Postgres) Exists(ctx context.Context, userID id.UserID, promptID id.PromptID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND prompt_template_id = $2)`,
		int64(userID), int64(promptID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

func (s *Postgres) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, prompt_template_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var out []*models.Favorite
	for rows.Next() {
		var (
			f                  models.Favorite
			rawUser, rawPrompt int64
		)
		if err := rows.Scan(&f.ID, &rawUser, &rawPrompt, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		f.UserID = id.UserID(rawUser)
		f.PromptID = id.PromptID(rawPrompt)
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return out, nil
}

func (s *Postgres) CountByUser(ctx context.Context, userID id.UserID) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, int64(userID))
}

func (s *Postgres) Count(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM favorites`)
}

func (s *Postgres) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM favorites WHERE created_at >= $1 AND created_at < $2`, start, end)
}

func (s *Postgres) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return n, nil
}
