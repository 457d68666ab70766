package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/api/http/middleware"
	"github.com/jaydeeprathod/portfolio-backend/internal/api/http/router"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router
}

func NewServer(p Params) (*fiber.App, error) {
	app := fiber.New(newFiberConfig(p.Cfg))

	if err := configureGlobalMiddleware(app, p.Cfg); err != nil {
		return nil, err
	}

	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app, nil
}

// newFiberConfig applies server.timeout_seconds as the connection
// read/write deadline. Zero leaves fiber's no-timeout default.
func newFiberConfig(cfg *config.Config) fiber.Config {
	fc := fiber.Config{}
	if cfg.Server.TimeoutSeconds > 0 {
		d := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
		fc.ReadTimeout = d
		fc.WriteTimeout = d
		fc.IdleTimeout = d
	}
	return fc
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config) error {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
	}

	// The origin allow-list runs before any handler so disallowed browsers
	// never reach the submission pipeline.
	policy, err := middleware.NewOriginPolicy(cfg.Server.CORS)
	if err != nil {
		return fmt.Errorf("invalid origin pattern: %w", err)
	}
	app.Use(middleware.AllowedOrigins(policy))

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] ${method} ${url} ${status}\n",
	}))

	return nil
}
