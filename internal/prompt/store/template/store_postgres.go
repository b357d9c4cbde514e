package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"promptserver/internal/platform/postgres"
	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
)

// tagSeparator joins tag names in string_agg; tag names never contain it.
const tagSeparator = "\x1f"

const selectTemplate = `
	SELECT p.id, p.uuid, p.title, p.description, COALESCE(p.current_version_id, 0), p.category_id,
		p.created_by_id, p.visibility, p.status, p.view_count, p.favorite_count, p.like_count,
		p.created_at, p.updated_at,
		COALESCE((SELECT string_agg(t.name, chr(31) ORDER BY t.name)
			FROM prompt_template_tags pt JOIN tags t ON t.id = pt.tag_id
			WHERE pt.prompt_template_id = p.id), '')
	FROM prompt_templates p`

// Postgres persists templates. Tag links are written by the tag store and
// read back here.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, t *models.PromptTemplate) error {
	var rawID int64
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO prompt_templates (uuid, title, description, current_version_id, category_id, created_by_id,
			visibility, status, view_count, favorite_count, like_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, t.UUID, t.Title, t.Description, nullableVersion(t.CurrentVersionID), nullableCategory(t.CategoryID),
		int64(t.CreatedByID), string(t.Visibility), string(t.Status),
		t.Stats.ViewCount, t.Stats.FavoriteCount, t.Stats.LikeCount, t.CreatedAt, t.UpdatedAt,
	).Scan(&rawID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("prompt %s: %w", t.UUID, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert prompt template: %w", err)
	}
	t.ID = id.PromptID(rawID)
	return nil
}

func (s *Postgres) Update(ctx context.Context, t *models.PromptTemplate) error {
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		UPDATE prompt_templates
		SET title = $2, description = $3, current_version_id = $4, category_id = $5,
			visibility = $6, status = $7, updated_at = $8
		WHERE id = $1
	`, int64(t.ID), t.Title, t.Description, nullableVersion(t.CurrentVersionID), nullableCategory(t.CategoryID),
		string(t.Visibility), string(t.Status), t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update prompt template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", t.ID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, promptID id.PromptID) (*models.PromptTemplate, error) {
	row := tx.Exec(ctx, s.db).QueryRowContext(ctx, selectTemplate+` WHERE p.id = $1`, int64(promptID))
	return scanTemplate(row)
}

func (s *Postgres) FindByUUID(ctx context.Context, promptUUID uuid.UUID) (*models.PromptTemplate, error) {
	row := tx.Exec(ctx, s.db).QueryRowContext(ctx, selectTemplate+` WHERE p.uuid = $1`, promptUUID)
	return scanTemplate(row)
}

// FindByIDs returns the templates that exist, in the order of ids.
func (s *Postgres) FindByIDs(ctx context.Context, ids []id.PromptID) ([]*models.PromptTemplate, error) {
	if len(ids) == 0 {
		return []*models.PromptTemplate{}, nil
	}
	found, err := s.query(ctx, selectTemplate+` WHERE p.id = ANY($1)`, pq.Array(rawIDs(ids)))
	if err != nil {
		return nil, err
	}
	byID := make(map[id.PromptID]*models.PromptTemplate, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	out := make([]*models.PromptTemplate, 0, len(found))
	for _, promptID := range ids {
		if t, ok := byID[promptID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Postgres) List(ctx context.Context, f models.Filter, req page.Request) ([]*models.PromptTemplate, int, error) {
	req = req.Normalize()
	where, args := buildWhere(f)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM prompt_templates p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count prompt templates: %w", err)
	}
	if total == 0 {
		return []*models.PromptTemplate{}, 0, nil
	}

	n := len(args)
	query := selectTemplate + where + orderBy(f.Sort) +
		` LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	items, err := s.query(ctx, query, append(args, req.Size, req.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Postgres) CountByStatus(ctx context.Context, authorID *id.UserID) (map[models.Status]int, error) {
	query := `SELECT status, COUNT(*) FROM prompt_templates`
	var args []any
	if authorID != nil {
		query += ` WHERE created_by_id = $1`
		args = append(args, int64(*authorID))
	}
	rows, err := s.db.QueryContext(ctx, query+` GROUP BY status`, args...)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Status]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[models.Status(status)] = count
	}
	return counts, rows.Err()
}

func (s *Postgres) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM prompt_templates
		WHERE status <> 'DELETED' AND created_at >= $1 AND created_at < $2`, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count created between: %w", err)
	}
	return count, nil
}

func (s *Postgres) CountByCategories(ctx context.Context, categoryIDs []id.CategoryID) (map[id.CategoryID]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, COUNT(*) FROM prompt_templates
		WHERE category_id = ANY($1) AND status <> 'DELETED'
		GROUP BY category_id
	`, pq.Array(rawCategoryIDs(categoryIDs)))
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[id.CategoryID]int, len(categoryIDs))
	for rows.Next() {
		var (
			categoryID int64
			count      int
		)
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[id.CategoryID(categoryID)] = count
	}
	return counts, rows.Err()
}

func (s *Postgres) IDsByCategories(ctx context.Context, categoryIDs []id.CategoryID) ([]id.PromptID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM prompt_templates WHERE category_id = ANY($1) ORDER BY id`,
		pq.Array(rawCategoryIDs(categoryIDs)))
	if err != nil {
		return nil, fmt.Errorf("prompt ids by category: %w", err)
	}
	defer rows.Close()

	var ids []id.PromptID
	for rows.Next() {
		var raw int64
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan prompt id: %w", err)
		}
		ids = append(ids, id.PromptID(raw))
	}
	return ids, rows.Err()
}

func (s *Postgres) Recent(ctx context.Context, limit int) ([]*models.PromptTemplate, error) {
	return s.query(ctx, selectTemplate+`
		WHERE p.visibility = 'PUBLIC' AND p.status <> 'DELETED'
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`, limit)
}

// ViewCounts returns stored view counts for ids, or for every non-deleted template when ids is empty.
func (s *Postgres) ViewCounts(ctx context.Context, ids []id.PromptID) (map[id.PromptID]int64, error) {
	query := `SELECT id, view_count FROM prompt_templates WHERE status <> 'DELETED'`
	var args []any
	if len(ids) > 0 {
		query = `SELECT id, view_count FROM prompt_templates WHERE id = ANY($1)`
		args = append(args, pq.Array(rawIDs(ids)))
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("view counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[id.PromptID]int64)
	for rows.Next() {
		var (
			promptID int64
			count    int64
		)
		if err := rows.Scan(&promptID, &count); err != nil {
			return nil, fmt.Errorf("scan view count: %w", err)
		}
		counts[id.PromptID(promptID)] = count
	}
	return counts, rows.Err()
}

func (s *Postgres) SumLikesByAuthor(ctx context.Context, authorID id.UserID) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(like_count), 0) FROM prompt_templates
		WHERE created_by_id = $1 AND status <> 'DELETED'
	`, int64(authorID)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum likes: %w", err)
	}
	return total, nil
}

func (s *Postgres) AdjustFavoriteCount(ctx context.Context, promptID id.PromptID, delta int64) (int64, error) {
	return s.adjust(ctx, "favorite_count", promptID, delta)
}

func (s *Postgres) AdjustLikeCount(ctx context.Context, promptID id.PromptID, delta int64) (int64, error) {
	return s.adjust(ctx, "like_count", promptID, delta)
}

func (s *Postgres) AddViewCount(ctx context.Context, promptID id.PromptID, n int64) error {
	_, err := s.adjust(ctx, "view_count", promptID, n)
	return err
}

// adjust applies delta to column, flooring at zero. column is always a package constant.
func (s *Postgres) adjust(ctx context.Context, column string, promptID id.PromptID, delta int64) (int64, error) {
	var value int64
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`UPDATE prompt_templates SET `+column+` = GREATEST(`+column+` + $2, 0) WHERE id = $1 RETURNING `+column,
		int64(promptID), delta,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("prompt %s: %w", promptID, sentinel.ErrNotFound)
		}
		return 0, fmt.Errorf("adjust %s: %w", column, err)
	}
	return value, nil
}

func (s *Postgres) query(ctx context.Context, query string, args ...any) ([]*models.PromptTemplate, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query prompt templates: %w", err)
	}
	defer rows.Close()

	out := []*models.PromptTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompt templates: %w", err)
	}
	return out, nil
}

// buildWhere mirrors models.Filter.Matches in SQL.
func buildWhere(f models.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	tagMatch := func(placeholder string) string {
		return `EXISTS (SELECT 1 FROM prompt_template_tags pt JOIN tags t ON t.id = pt.tag_id
			WHERE pt.prompt_template_id = p.id AND t.name ILIKE ` + placeholder + `)`
	}

	if !f.IncludeDeleted && !containsDeleted(f.Statuses) {
		conds = append(conds, `p.status <> 'DELETED'`)
	}
	if f.AuthorID != nil {
		conds = append(conds, `p.created_by_id = `+arg(int64(*f.AuthorID)))
	}
	if f.CategoryID != nil {
		conds = append(conds, `p.category_id = `+arg(int64(*f.CategoryID)))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			statuses = append(statuses, string(st))
		}
		conds = append(conds, `p.status = ANY(`+arg(pq.Array(statuses))+`)`)
	}
	if len(f.Visibilities) > 0 {
		visibilities := make([]string, 0, len(f.Visibilities))
		for _, v := range f.Visibilities {
			visibilities = append(visibilities, string(v))
		}
		conds = append(conds, `p.visibility = ANY(`+arg(pq.Array(visibilities))+`)`)
	}
	if f.Title != "" {
		conds = append(conds, `p.title ILIKE `+arg(likePattern(f.Title)))
	}
	if f.Description != "" {
		conds = append(conds, `p.description ILIKE `+arg(likePattern(f.Description)))
	}
	if f.Tag != "" {
		conds = append(conds, tagMatch(arg(likePattern(f.Tag))))
	}
	if f.Keyword != "" {
		p := arg(likePattern(f.Keyword))
		conds = append(conds, `(p.title ILIKE `+p+` OR p.description ILIKE `+p+` OR `+tagMatch(p)+`)`)
	}
	if len(conds) == 0 {
		return "", args
	}
	return ` WHERE ` + strings.Join(conds, ` AND `), args
}

func orderBy(sort models.SortType) string {
	switch sort {
	case models.SortTitle:
		return ` ORDER BY p.title ASC, p.id DESC`
	case models.SortMostFavorite:
		return ` ORDER BY p.like_count DESC, p.updated_at DESC, p.id DESC`
	case models.SortMostViews:
		return ` ORDER BY p.view_count DESC, p.updated_at DESC, p.id DESC`
	default:
		return ` ORDER BY p.updated_at DESC, p.id DESC`
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func containsDeleted(statuses []models.Status) bool {
	for _, st := range statuses {
		if st == models.StatusDeleted {
			return true
		}
	}
	return false
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*models.PromptTemplate, error) {
	var (
		t          models.PromptTemplate
		rawID      int64
		category   sql.NullInt64
		author     int64
		visibility string
		status     string
		tags       string
	)
	err := row.Scan(&rawID, &t.UUID, &t.Title, &t.Description, &t.CurrentVersionID, &category,
		&author, &visibility, &status, &t.Stats.ViewCount, &t.Stats.FavoriteCount, &t.Stats.LikeCount,
		&t.CreatedAt, &t.UpdatedAt, &tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("prompt template: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan prompt template: %w", err)
	}
	t.ID = id.PromptID(rawID)
	t.CreatedByID = id.UserID(author)
	t.Visibility = models.Visibility(visibility)
	t.Status = models.Status(status)
	if category.Valid {
		c := id.CategoryID(category.Int64)
		t.CategoryID = &c
	}
	t.Tags = []string{}
	if tags != "" {
		t.Tags = strings.Split(tags, tagSeparator)
	}
	return &t, nil
}

func nullableCategory(c *id.CategoryID) sql.NullInt64 {
	if c == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*c), Valid: true}
}

func nullableVersion(versionID int64) sql.NullInt64 {
	return sql.NullInt64{Int64: versionID, Valid: versionID > 0}
}

func rawIDs(ids []id.PromptID) []int64 {
	out := make([]int64, len(ids))
	for i, v := range ids {
		out[i] = int64(v)
	}
	return out
}

func rawCategoryIDs(ids []id.CategoryID) []int64 {
	out := make([]int64, len(ids))
	for i, v := range ids {
		out[i] = int64(v)
	}
	return out
}
