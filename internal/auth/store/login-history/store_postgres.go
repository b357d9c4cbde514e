package loginhistory

import (
	"context"
	"database/sql"
	"fmt"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry *models.LoginHistory) error {
	query := `
		INSERT INTO login_histories (user_id, login_at, ip_address, user_agent, browser, os, device, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		int64(entry.UserID), entry.LoginAt, entry.IP, entry.UserAgent,
		entry.Browser, entry.OS, entry.Device, string(entry.Status),
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert login history: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID, req page.Request) ([]*models.LoginHistory, int, error) {
	req = req.Normalize()
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM login_histories WHERE user_id = $1`, int64(userID),
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count login history: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, login_at, ip_address, user_agent, browser, os, device, status
		FROM login_histories
		WHERE user_id = $1
		ORDER BY login_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, int64(userID), req.Size, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list login history: %w", err)
	}
	defer rows.Close()

	var out []*models.LoginHistory
	for rows.Next() {
		h := models.LoginHistory{UserID: userID}
		var status string
		if err := rows.Scan(&h.ID, &h.LoginAt, &h.IP, &h.UserAgent, &h.Browser, &h.OS, &h.Device, &status); err != nil {
			return nil, 0, fmt.Errorf("scan login history: %w", err)
		}
		h.Status = models.LoginStatus(status)
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate login history: %w", err)
	}
	return out, total, nil
}
