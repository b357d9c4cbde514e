package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"promptserver/internal/auth/models"
	"promptserver/internal/platform/postgres"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, uuid, email, name, password_hash, team_id, role, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (uuid, email, name, password_hash, team_id, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var teamID sql.NullInt64
	if user.TeamID != nil {
		teamID = sql.NullInt64{Int64: *user.TeamID, Valid: true}
	}
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx, query,
		user.UUID, user.Email.String(), user.Name, user.PasswordHash, teamID,
		string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", user.Email, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	row := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, int64(userID))
	return scanUser(row)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	row := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email.String())
	return scanUser(row)
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE status <> 'DELETED'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users
		WHERE status <> 'DELETED' AND created_at >= $1 AND created_at < $2
	`, start, end).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users in window: %w", err)
	}
	return n, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u      models.User
		rawID  int64
		email  string
		teamID sql.NullInt64
		role   string
		status string
	)
	err := row.Scan(&rawID, &u.UUID, &email, &u.Name, &u.PasswordHash, &teamID, &role, &status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.ID = id.UserID(rawID)
	u.Email = models.Email(email)
	u.Role = models.Role(role)
	u.Status = models.UserStatus(status)
	if teamID.Valid {
		t := teamID.Int64
		u.TeamID = &t
	}
	return &u, nil
}
