package version

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"promptserver/internal/platform/postgres"
	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const selectVersion = `
	SELECT id, uuid, prompt_template_id, version_number, content, changes, input_variables,
		action_type, created_by_id, created_at
	FROM prompt_versions`

func (s *Postgres) Create(ctx context.Context, v *models.PromptVersion) error {
	vars, err := json.Marshal(v.InputVariables)
	if err != nil {
		return fmt.Errorf("marshal input variables: %w", err)
	}
	err = tx.Exec(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO prompt_versions (uuid, prompt_template_id, version_number, content, changes,
			input_variables, action_type, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, v.UUID, int64(v.PromptTemplateID), v.VersionNumber, v.Content, v.Changes,
		string(vars), string(v.ActionType), int64(v.CreatedByID), v.CreatedAt,
	).Scan(&v.ID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("version %d of prompt %s: %w", v.VersionNumber, v.PromptTemplateID, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert prompt version: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, versionID int64) (*models.PromptVersion, error) {
	return scanVersion(tx.Exec(ctx, s.db).QueryRowContext(ctx, selectVersion+` WHERE id = $1`, versionID))
}

func (s *Postgres) FindByNumber(ctx context.Context, templateID id.PromptID, number int) (*models.PromptVersion, error) {
	return scanVersion(tx.Exec(ctx, s.db).QueryRowContext(ctx,
		selectVersion+` WHERE prompt_template_id = $1 AND version_number = $2`, int64(templateID), number))
}

func (s *Postgres) ListByTemplate(ctx context.Context, templateID id.PromptID) ([]*models.PromptVersion, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx,
		selectVersion+` WHERE prompt_template_id = $1 ORDER BY version_number DESC`, int64(templateID))
	if err != nil {
		return nil, fmt.Errorf("list prompt versions: %w", err)
	}
	defer rows.Close()

	out := []*models.PromptVersion{}
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Postgres) LatestNumber(ctx context.Context, templateID id.PromptID) (int, error) {
	var latest int
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version_number), 0) FROM prompt_versions WHERE prompt_template_id = $1`,
		int64(templateID),
	).Scan(&latest)
	if err != nil {
		return 0, fmt.Errorf("latest version number: %w", err)
	}
	return latest, nil
}

func (s *Postgres) Delete(ctx context.Context, versionID int64) error {
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx, `DELETE FROM prompt_versions WHERE id = $1`, versionID)
	if err != nil {
		return fmt.Errorf("delete prompt version: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("version %d: %w", versionID, sentinel.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVersion(row scanner) (*models.PromptVersion, error) {
	var (
		v          models.PromptVersion
		templateID int64
		vars       []byte
		action     string
		author     int64
	)
	err := row.Scan(&v.ID, &v.UUID, &templateID, &v.VersionNumber, &v.Content, &v.Changes, &vars,
		&action, &author, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("prompt version: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan prompt version: %w", err)
	}
	v.PromptTemplateID = id.PromptID(templateID)
	v.ActionType = models.ActionType(action)
	v.CreatedByID = id.UserID(author)
	v.InputVariables = []models.InputVariable{}
	if len(vars) > 0 {
		if err := json.Unmarshal(vars, &v.InputVariables); err != nil {
			return nil, fmt.Errorf("decode input variables: %w", err)
		}
	}
	return &v, nil
}
