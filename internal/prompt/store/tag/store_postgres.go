package tag

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/tx"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// LoadOrCreate returns a tag per name, creating missing ones. Order follows names.
func (s *Postgres) LoadOrCreate(ctx context.Context, names []string, now time.Time) ([]*models.Tag, error) {
	names = models.NormalizeTags(names)
	if len(names) == 0 {
		return []*models.Tag{}, nil
	}
	exec := tx.Exec(ctx, s.db)
	for _, name := range names {
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO tags (uuid, name, created_at) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name, now,
		); err != nil {
			return nil, fmt.Errorf("insert tag %q: %w", name, err)
		}
	}

	rows, err := exec.QueryContext(ctx, `SELECT id, uuid, name, created_at FROM tags WHERE name = ANY($1)`, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	byName := make(map[string]*models.Tag, len(names))
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.UUID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		byName[t.Name] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	out := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		if t, ok := byName[name]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Postgres) ReplacePromptTags(ctx context.Context, promptID id.PromptID, tagIDs []int64) error {
	exec := tx.Exec(ctx, s.db)
	if _, err := exec.ExecContext(ctx, `DELETE FROM prompt_template_tags WHERE prompt_template_id = $1`, int64(promptID)); err != nil {
		return fmt.Errorf("clear prompt tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := exec.ExecContext(ctx, `
		INSERT INTO prompt_template_tags (prompt_template_id, tag_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, int64(promptID), pq.Array(tagIDs)); err != nil {
		return fmt.Errorf("link prompt tags: %w", err)
	}
	return nil
}
