package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration, resolved once at startup.
type Config struct {
	Server    Server
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	View      ViewConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	LogLevel  string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig configures the Postgres pool. An empty URL selects in-memory stores.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig configures the view cache and token blacklist. An empty URL
// selects in-memory implementations.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSigningKey   string
	Issuer          string
	Audience        string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AdminToken      string
}

// ViewConfig drives view de-duplication and the cache-to-database sync jobs.
type ViewConfig struct {
	DuplicateTTL         time.Duration
	CountCacheTTL        time.Duration
	SyncSpec             string
	ConsistencySpec      string
	SyncTimeout          time.Duration
	SyncConcurrency      int
	ConsistencyThreshold int64
}

type RateLimitConfig struct {
	ViewRPS  float64
	LoginRPS float64
	Burst    int
}

// KafkaConfig configures the audit publisher. No brokers means in-memory audit.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

const devSigningKey = "dev-secret-key-change-in-production"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PROMPTSERVER_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")
	v.SetDefault("REDIS_READ_TIMEOUT", "3s")
	v.SetDefault("REDIS_WRITE_TIMEOUT", "3s")

	v.SetDefault("JWT_SIGNING_KEY", devSigningKey)
	v.SetDefault("JWT_ISSUER", "promptserver")
	v.SetDefault("JWT_AUDIENCE", "promptserver-api")
	v.SetDefault("ACCESS_TOKEN_TTL", "1h")
	v.SetDefault("REFRESH_TOKEN_TTL", "336h")
	v.SetDefault("ADMIN_TOKEN", "")

	v.SetDefault("VIEW_DUPLICATE_TTL", "1h")
	v.SetDefault("VIEW_COUNT_CACHE_TTL", "24h")
	v.SetDefault("VIEW_SYNC_SPEC", "@every 30m")
	v.SetDefault("VIEW_CONSISTENCY_SPEC", "0 2 * * *")
	v.SetDefault("VIEW_SYNC_TIMEOUT", "5m")
	v.SetDefault("VIEW_SYNC_CONCURRENCY", 8)
	v.SetDefault("VIEW_CONSISTENCY_THRESHOLD", 10)

	v.SetDefault("RATE_LIMIT_VIEW_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_LOGIN_RPS", 1.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_AUDIT_TOPIC", "promptserver.audit")
}

// Load reads an optional .env file (envFile, or ".env" when empty) and then the
// process environment. Environment variables win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

// FromViper resolves a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:            v.GetString("PROMPTSERVER_ADDR"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSigningKey:   v.GetString("JWT_SIGNING_KEY"),
			Issuer:          v.GetString("JWT_ISSUER"),
			Audience:        v.GetString("JWT_AUDIENCE"),
			AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
			RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),
			AdminToken:      v.GetString("ADMIN_TOKEN"),
		},
		View: ViewConfig{
			DuplicateTTL:         v.GetDuration("VIEW_DUPLICATE_TTL"),
			CountCacheTTL:        v.GetDuration("VIEW_COUNT_CACHE_TTL"),
			SyncSpec:             v.GetString("VIEW_SYNC_SPEC"),
			ConsistencySpec:      v.GetString("VIEW_CONSISTENCY_SPEC"),
			SyncTimeout:          v.GetDuration("VIEW_SYNC_TIMEOUT"),
			SyncConcurrency:      v.GetInt("VIEW_SYNC_CONCURRENCY"),
			ConsistencyThreshold: v.GetInt64("VIEW_CONSISTENCY_THRESHOLD"),
		},
		RateLimit: RateLimitConfig{
			ViewRPS:  v.GetFloat64("RATE_LIMIT_VIEW_RPS"),
			LoginRPS: v.GetFloat64("RATE_LIMIT_LOGIN_RPS"),
			Burst:    v.GetInt("RATE_LIMIT_BURST"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			AuditTopic: v.GetString("KAFKA_AUDIT_TOPIC"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.Auth.RefreshTokenTTL < c.Auth.AccessTokenTTL {
		return errors.New("refresh token TTL must not be shorter than access token TTL")
	}
	if len(c.Auth.JWTSigningKey) < 16 {
		return errors.New("JWT_SIGNING_KEY must be at least 16 bytes")
	}
	if c.View.DuplicateTTL <= 0 || c.View.CountCacheTTL <= 0 {
		return errors.New("view TTLs must be positive")
	}
	if c.View.SyncConcurrency <= 0 {
		return errors.New("VIEW_SYNC_CONCURRENCY must be positive")
	}
	return nil
}

// UsesDevSigningKey reports whether the built-in development key is in use.
func (c Config) UsesDevSigningKey() bool {
	return c.Auth.JWTSigningKey == devSigningKey
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
