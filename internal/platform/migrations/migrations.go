// Package migrations applies the idempotent Postgres schema.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// statements run in order; every one is safe to re-run.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		uuid          UUID NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		team_id       BIGINT,
		role          TEXT NOT NULL DEFAULT 'USER',
		status        TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		user_id    BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		token      TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS login_histories (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		login_at   TIMESTAMPTZ NOT NULL,
		ip_address TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		browser    TEXT NOT NULL DEFAULT '',
		os         TEXT NOT NULL DEFAULT '',
		device     TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_login_histories_user ON login_histories (user_id, login_at DESC)`,
	`CREATE TABLE IF NOT EXISTS token_blacklist (
		jti        TEXT PRIMARY KEY,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id                 BIGSERIAL PRIMARY KEY,
		name               TEXT NOT NULL UNIQUE,
		display_name       TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		is_system          BOOLEAN NOT NULL DEFAULT FALSE,
		parent_category_id BIGINT REFERENCES categories(id),
		created_at         TIMESTAMPTZ NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prompt_templates (
		id                 BIGSERIAL PRIMARY KEY,
		uuid               UUID NOT NULL UNIQUE,
		title              TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		current_version_id BIGINT,
		category_id        BIGINT REFERENCES categories(id),
		created_by_id      BIGINT NOT NULL REFERENCES users(id),
		visibility         TEXT NOT NULL,
		status             TEXT NOT NULL,
		view_count         BIGINT NOT NULL DEFAULT 0,
		favorite_count     BIGINT NOT NULL DEFAULT 0,
		like_count         BIGINT NOT NULL DEFAULT 0,
		created_at         TIMESTAMPTZ NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prompt_templates_author ON prompt_templates (created_by_id, updated_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_prompt_templates_listing ON prompt_templates (status, visibility, updated_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_prompt_templates_category ON prompt_templates (category_id)`,
	`CREATE TABLE IF NOT EXISTS prompt_versions (
		id                 BIGSERIAL PRIMARY KEY,
		uuid               UUID NOT NULL UNIQUE,
		prompt_template_id BIGINT NOT NULL REFERENCES prompt_templates(id) ON DELETE CASCADE,
		version_number     INT NOT NULL,
		content            TEXT NOT NULL,
		changes            TEXT NOT NULL DEFAULT '',
		input_variables    JSONB NOT NULL DEFAULT '[]',
		action_type        TEXT NOT NULL,
		created_by_id      BIGINT NOT NULL REFERENCES users(id),
		created_at         TIMESTAMPTZ NOT NULL,
		UNIQUE (prompt_template_id, version_number)
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id         BIGSERIAL PRIMARY KEY,
		uuid       UUID NOT NULL UNIQUE,
		name       TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prompt_template_tags (
		prompt_template_id BIGINT NOT NULL REFERENCES prompt_templates(id) ON DELETE CASCADE,
		tag_id             BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (prompt_template_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id                 BIGSERIAL PRIMARY KEY,
		user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		prompt_template_id BIGINT NOT NULL REFERENCES prompt_templates(id) ON DELETE CASCADE,
		created_at         TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, prompt_template_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_favorites_created ON favorites (created_at)`,
	`CREATE TABLE IF NOT EXISTS prompt_likes (
		id                 BIGSERIAL PRIMARY KEY,
		user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		prompt_template_id BIGINT NOT NULL REFERENCES prompt_templates(id) ON DELETE CASCADE,
		created_at         TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, prompt_template_id)
	)`,
	`CREATE TABLE IF NOT EXISTS view_records (
		id                 UUID PRIMARY KEY,
		prompt_template_id BIGINT NOT NULL REFERENCES prompt_templates(id) ON DELETE CASCADE,
		user_id            BIGINT,
		anonymous_id       TEXT NOT NULL DEFAULT '',
		ip_address         TEXT NOT NULL,
		viewed_at          TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_view_records_prompt ON view_records (prompt_template_id, viewed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_view_records_viewed ON view_records (viewed_at)`,
	`CREATE TABLE IF NOT EXISTS prompt_search_documents (
		prompt_template_id BIGINT PRIMARY KEY REFERENCES prompt_templates(id) ON DELETE CASCADE,
		uuid               UUID NOT NULL,
		title              TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		content            TEXT NOT NULL DEFAULT '',
		tags               TEXT[] NOT NULL DEFAULT '{}',
		category_id        BIGINT,
		visibility         TEXT NOT NULL,
		status             TEXT NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL,
		document           TSVECTOR GENERATED ALWAYS AS (
			setweight(to_tsvector('simple', coalesce(title, '')), 'A') ||
			setweight(to_tsvector('simple', coalesce(description, '')), 'B') ||
			setweight(to_tsvector('simple', coalesce(content, '')), 'C')
		) STORED
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prompt_search_documents_document ON prompt_search_documents USING GIN (document)`,
}

// Count is the number of statements Apply executes.
func Count() int {
	return len(statements)
}

// Apply runs the schema statements in order, stopping at the first failure.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
