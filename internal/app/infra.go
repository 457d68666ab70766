package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/store"
	"github.com/jaydeeprathod/portfolio-backend/pkg/mailer"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideMailer),
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
)

func ProvideMailer(cfg *config.Config) (*mailer.Client, error) {
	client, err := mailer.NewFromCentral(cfg.Email)
	if err != nil {
		return nil, err
	}
	if !client.Configured() {
		slog.Warn("mail credentials missing, submissions will use the fallback store")
	}
	return client, nil
}

func ProvideStore(cfg *config.Config) *store.FileStore {
	return store.NewFileStore(cfg.Storage.MessagesPath)
}

// ProvideRedis returns nil when no address is configured. Redis only backs
// the contact-form rate limiter, so the service must run without it.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
	})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb
}
