package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"promptserver/internal/search/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/tx"
)

// Postgres indexes documents in prompt_search_documents. Matching uses the
// generated tsvector column with an ILIKE fallback for partial words and tags.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Upsert(ctx context.Context, doc models.Document) error {
	var category sql.NullInt64
	if doc.CategoryID != nil {
		category = sql.NullInt64{Int64: int64(*doc.CategoryID), Valid: true}
	}
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO prompt_search_documents (prompt_template_id, uuid, title, description, content, tags,
			category_id, visibility, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (prompt_template_id) DO UPDATE SET
			uuid = EXCLUDED.uuid,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			content = EXCLUDED.content,
			tags = EXCLUDED.tags,
			category_id = EXCLUDED.category_id,
			visibility = EXCLUDED.visibility,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`, int64(doc.PromptID), doc.UUID, doc.Title, doc.Description, doc.Content, pq.Array(tags),
		category, doc.Visibility, doc.Status, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert search document: %w", err)
	}
	return nil
}

func (s *Postgres) Remove(ctx context.Context, promptID id.PromptID) error {
	if _, err := tx.Exec(ctx, s.db).ExecContext(ctx,
		`DELETE FROM prompt_search_documents WHERE prompt_template_id = $1`, int64(promptID)); err != nil {
		return fmt.Errorf("remove search document: %w", err)
	}
	return nil
}

const searchMatch = `
	visibility = 'PUBLIC' AND status = 'PUBLISHED'
	AND (
		document @@ plainto_tsquery('simple', $1)
		OR title ILIKE $2 OR description ILIKE $2 OR content ILIKE $2
		OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $2)
	)`

func (s *Postgres) Search(ctx context.Context, q models.Query) ([]models.Hit, int, error) {
	q = q.Normalize()
	pattern := "%" + escapeLike(q.Keyword) + "%"

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM prompt_search_documents WHERE `+searchMatch, q.Keyword, pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count search hits: %w", err)
	}
	if total == 0 {
		return []models.Hit{}, 0, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT prompt_template_id,
			ts_rank(document, plainto_tsquery('simple', $1))
			+ CASE WHEN title ILIKE $2 THEN 1 ELSE 0 END AS score
		FROM prompt_search_documents
		WHERE `+searchMatch+`
		ORDER BY score DESC, updated_at DESC
		LIMIT $3 OFFSET $4
	`, q.Keyword, pattern, q.Page.Size, q.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	hits := []models.Hit{}
	for rows.Next() {
		var (
			promptID int64
			score    float64
		)
		if err := rows.Scan(&promptID, &score); err != nil {
			return nil, 0, fmt.Errorf("scan search hit: %w", err)
		}
		hits = append(hits, models.Hit{PromptID: id.PromptID(promptID), Score: score})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate search hits: %w", err)
	}
	return hits, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
