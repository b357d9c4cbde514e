package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/tx"
)

// Postgres persists view records in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Save(ctx context.Context, r *models.ViewRecord) error {
	var userID sql.NullInt64
	if r.UserID != nil {
		userID = sql.NullInt64{Int64: int64(*r.UserID), Valid: true}
	}
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO view_records (id, prompt_template_id, user_id, anonymous_id, ip_address, viewed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.ID.String(), int64(r.PromptID), userID, r.AnonymousID, r.IP, r.ViewedAt)
	if err != nil {
		return fmt.Errorf("insert view record: %w", err)
	}
	return nil
}

func (s *Postgres) CountByPrompt(ctx context.Context, ids []id.PromptID) (map[id.PromptID]int64, error) {
	where, args := filter(time.Time{}, time.Time{}, ids)
	return s.countsBy(ctx, `SELECT prompt_template_id, COUNT(*) FROM view_records`+where+` GROUP BY prompt_template_id`, args...)
}

func (s *Postgres) CountBetween(ctx context.Context, start, end time.Time, ids []id.PromptID) (int64, error) {
	where, args := filter(start, end, ids)
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM view_records`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count views: %w", err)
	}
	return total, nil
}

func (s *Postgres) CountsByPromptBetween(ctx context.Context, ids []id.PromptID, start, end time.Time) (map[id.PromptID]int64, error) {
	if len(ids) == 0 {
		return map[id.PromptID]int64{}, nil
	}
	where, args := filter(start, end, ids)
	return s.countsBy(ctx, `SELECT prompt_template_id, COUNT(*) FROM view_records`+where+` GROUP BY prompt_template_id`, args...)
}

func (s *Postgres) TopPrompts(ctx context.Context, start, end time.Time, ids []id.PromptID, limit int) ([]PromptViews, error) {
	where, args := filter(start, end, ids)
	args = append(args, limit)
	rows, err := s.db.QueryContext(ctx, `
		SELECT prompt_template_id, COUNT(*) AS views, MAX(viewed_at) AS last_viewed
		FROM view_records`+where+`
		GROUP BY prompt_template_id
		ORDER BY views DESC, last_viewed DESC
		LIMIT $`+strconv.Itoa(len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("query top prompts: %w", err)
	}
	defer rows.Close()

	var out []PromptViews
	for rows.Next() {
		var (
			pv       PromptViews
			promptID int64
		)
		if err := rows.Scan(&promptID, &pv.Views, &pv.LastViewedAt); err != nil {
			return nil, fmt.Errorf("scan top prompt: %w", err)
		}
		pv.PromptID = id.PromptID(promptID)
		out = append(out, pv)
	}
	return out, rows.Err()
}

func (s *Postgres) Daily(ctx context.Context, promptID id.PromptID, start, end time.Time) ([]models.DailyViewCount, error) {
	where, args := filter(start, end, []id.PromptID{promptID})
	rows, err := s.db.QueryContext(ctx, `
		SELECT to_char(viewed_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM view_records`+where+`
		GROUP BY day
		ORDER BY day`, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily views: %w", err)
	}
	defer rows.Close()

	var out []models.DailyViewCount
	for rows.Next() {
		var d models.DailyViewCount
		if err := rows.Scan(&d.Date, &d.ViewCount); err != nil {
			return nil, fmt.Errorf("scan daily views: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Postgres) countsBy(ctx context.Context, query string, args ...any) (map[id.PromptID]int64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count views by prompt: %w", err)
	}
	defer rows.Close()

	counts := make(map[id.PromptID]int64)
	for rows.Next() {
		var promptID, n int64
		if err := rows.Scan(&promptID, &n); err != nil {
			return nil, fmt.Errorf("scan view count: %w", err)
		}
		counts[id.PromptID(promptID)] = n
	}
	return counts, rows.Err()
}

// filter builds the WHERE clause for [start, end) and ids. Zero bounds and empty ids are skipped.
func filter(start, end time.Time, ids []id.PromptID) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !start.IsZero() {
		args = append(args, start)
		conds = append(conds, "viewed_at >= $"+strconv.Itoa(len(args)))
	}
	if !end.IsZero() {
		args = append(args, end)
		conds = append(conds, "viewed_at < $"+strconv.Itoa(len(args)))
	}
	if len(ids) > 0 {
		raw := make([]int64, len(ids))
		for i, promptID := range ids {
			raw[i] = int64(promptID)
		}
		args = append(args, pq.Array(raw))
		conds = append(conds, "prompt_template_id = ANY($"+strconv.Itoa(len(args))+")")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
