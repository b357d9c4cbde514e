package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"promptserver/internal/category/models"
	"promptserver/internal/platform/postgres"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

// Postgres persists categories in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const categoryColumns = `id, name, display_name, description, is_system, parent_category_id, created_at, updated_at`

func (s *Postgres) Create(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (name, display_name, description, is_system, parent_category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var rawID int64
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.DisplayName, c.Description, c.IsSystem, nullableID(c.ParentCategoryID), c.CreatedAt, c.UpdatedAt,
	).Scan(&rawID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("category name %q: %w", c.Name, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	c.ID = id.CategoryID(rawID)
	return nil
}

func (s *Postgres) Update(ctx context.Context, c *models.Category) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET display_name = $2, description = $3, parent_category_id = $4, updated_at = $5
		WHERE id = $1
	`, int64(c.ID), c.DisplayName, c.Description, nullableID(c.ParentCategoryID), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireAffected(res, c.ID)
}

func (s *Postgres) Delete(ctx context.Context, categoryID id.CategoryID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, int64(categoryID))
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireAffected(res, categoryID)
}

func (s *Postgres) FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, int64(categoryID))
	return scanCategory(row)
}

func (s *Postgres) FindByName(ctx context.Context, name string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name)
	return scanCategory(row)
}

func (s *Postgres) List(ctx context.Context, isSystem *bool) ([]*models.Category, error) {
	if isSystem == nil {
		return s.query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	}
	return s.query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE is_system = $1 ORDER BY id`, *isSystem)
}

func (s *Postgres) ListRoots(ctx context.Context) ([]*models.Category, error) {
	return s.query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE parent_category_id IS NULL ORDER BY id`)
}

func (s *Postgres) ListChildren(ctx context.Context, parentID id.CategoryID) ([]*models.Category, error) {
	return s.query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE parent_category_id = $1 ORDER BY id`, int64(parentID))
}

func (s *Postgres) HasChildren(ctx context.Context, parentID id.CategoryID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE parent_category_id = $1)`, int64(parentID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check subcategories: %w", err)
	}
	return exists, nil
}

func (s *Postgres) query(ctx context.Context, query string, args ...any) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (*models.Category, error) {
	var (
		c      models.Category
		rawID  int64
		parent sql.NullInt64
	)
	err := row.Scan(&rawID, &c.Name, &c.DisplayName, &c.Description, &c.IsSystem, &parent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	c.ID = id.CategoryID(rawID)
	if parent.Valid {
		p := id.CategoryID(parent.Int64)
		c.ParentCategoryID = &p
	}
	return &c, nil
}

func nullableID(p *id.CategoryID) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func requireAffected(res sql.Result, categoryID id.CategoryID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", categoryID, sentinel.ErrNotFound)
	}
	return nil
}
