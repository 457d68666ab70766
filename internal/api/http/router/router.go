package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/api/http/handler"
	"github.com/jaydeeprathod/portfolio-backend/internal/service/contact"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client `optional:"true"`
	ContactSvc contact.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	contactH := handler.NewContactHandler(r.p.ContactSvc)

	api := app.Group("/api")
	r.registerContactRoutes(api, contactH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	systemH := handler.NewSystemHandler()
	app.Get("/", systemH.Root)
	app.Get("/health", systemH.Health)

	if r.p.Cfg.Metrics.Enabled {
		path := r.p.Cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
