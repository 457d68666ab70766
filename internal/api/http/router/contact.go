package router

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/jaydeeprathod/portfolio-backend/internal/api/http/handler"
	"github.com/jaydeeprathod/portfolio-backend/internal/api/http/middleware"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler) {
	// Fiber runs route handlers in registration order, so middleware goes
	// ahead of the route handler.
	if r.p.Redis != nil {
		api.Post("/contact", middleware.NewLimiterWithRedis(r.p.Redis), h.Submit)
	} else {
		api.Post("/contact", h.Submit)
	}

	if token := r.p.Cfg.Admin.Token; token != "" {
		api.Get("/messages", middleware.AdminToken(token), h.Messages)
	} else {
		slog.Warn("admin token not configured, /api/messages is unauthenticated")
		api.Get("/messages", h.Messages)
	}
}
