package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 14*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, time.Hour, cfg.View.DuplicateTTL)
	assert.Equal(t, 24*time.Hour, cfg.View.CountCacheTTL)
	assert.Equal(t, "@every 30m", cfg.View.SyncSpec)
	assert.Equal(t, "0 2 * * *", cfg.View.ConsistencySpec)
	assert.Equal(t, int64(10), cfg.View.ConsistencyThreshold)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.True(t, cfg.UsesDevSigningKey())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("KAFKA_BROKERS=k1:9092, k2:9092\nVIEW_SYNC_SPEC=@every 5m\n"), 0o600))
	t.Setenv("PROMPTSERVER_ADDR", ":9999")
	t.Cleanup(func() {
		os.Unsetenv("KAFKA_BROKERS")
		os.Unsetenv("VIEW_SYNC_SPEC")
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "@every 5m", cfg.View.SyncSpec)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("JWT_SIGNING_KEY", "short")
	_, err := FromViper(v)
	require.Error(t, err)

	v = viper.New()
	setDefaults(v)
	v.Set("REFRESH_TOKEN_TTL", "1m")
	_, err = FromViper(v)
	require.Error(t, err)
}
