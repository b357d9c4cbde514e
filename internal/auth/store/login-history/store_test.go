package loginhistory

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptserver/internal/auth/models"
	"promptserver/pkg/platform/page"
)

func TestInMemoryStore_ListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		require.NoError(t, store.Append(ctx, models.NewLoginHistory(1, "ip", "", models.LoginStatusSuccess, base.Add(time.Duration(i)*time.Hour))))
	}
	require.NoError(t, store.Append(ctx, models.NewLoginHistory(2, "ip", "", models.LoginStatusFailed, base)))

	items, total, err := store.ListByUser(ctx, 1, page.Request{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, base.Add(2*time.Hour), items[0].LoginAt)
	assert.Equal(t, base.Add(time.Hour), items[1].LoginAt)
}

func TestPostgresStore_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM login_histories`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM login_histories .* LIMIT \$2 OFFSET \$3`).WithArgs(int64(1), 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login_at", "ip_address", "user_agent", "browser", "os", "device", "status"}).
			AddRow(int64(5), now, "10.0.0.1", "curl/8", "curl 8", "Unknown", "Desktop", "SUCCESS"))

	items, total, err := NewPostgres(db).ListByUser(context.Background(), 1, page.Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, models.LoginStatusSuccess, items[0].Status)
	assert.EqualValues(t, 5, items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
