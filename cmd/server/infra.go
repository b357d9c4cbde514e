package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"promptserver/internal/platform/config"
	"promptserver/internal/platform/kafka"
	"promptserver/internal/platform/migrations"
	"promptserver/internal/platform/postgres"
	"promptserver/internal/platform/redis"
)

// infra holds the external connections. Each field is nil when its backend is
// not configured and the matching in-memory implementation is used instead.
type infra struct {
	db    *sql.DB
	redis *redis.Client
	kafka *kgo.Client
}

func openInfra(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{}

	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		in.db = db
		if err := migrations.Apply(ctx, db); err != nil {
			in.close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		log.Info("postgres connected", "statements", migrations.Count())
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.close()
		return nil, err
	}
	in.redis = rc
	if rc == nil {
		log.Warn("REDIS_URL not set, using in-memory view cache")
	}

	kc, err := kafka.NewClient(ctx, cfg.Kafka)
	if err != nil {
		in.close()
		return nil, err
	}
	in.kafka = kc
	if kc != nil {
		if err := kafka.EnsureTopic(ctx, kc, cfg.Kafka.AuditTopic, 1, 1); err != nil {
			in.close()
			return nil, err
		}
		log.Info("audit events published to kafka", "topic", cfg.Kafka.AuditTopic)
	}

	return in, nil
}

// health pings every configured backend.
func (in *infra) health(ctx context.Context) error {
	var errs []error
	if in.db != nil {
		if err := in.db.PingContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("postgres: %w", err))
		}
	}
	if in.redis != nil {
		if err := in.redis.Health(ctx); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (in *infra) close() {
	if in.kafka != nil {
		in.kafka.Close()
	}
	if in.redis != nil {
		_ = in.redis.Close()
	}
	if in.db != nil {
		_ = in.db.Close()
	}
}
