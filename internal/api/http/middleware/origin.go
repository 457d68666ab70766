package middleware

import (
	"log/slog"
	"regexp"

	"github.com/gofiber/fiber/v3"

	"github.com/jaydeeprathod/portfolio-backend/config"
)

// OriginPolicy decides which browser origins may call the API.
type OriginPolicy struct {
	exact    map[string]struct{}
	patterns []*regexp.Regexp
}

// NewOriginPolicy builds the allow-list from config: the frontend origin,
// any extra exact origins, and suffix patterns for preview deployments.
func NewOriginPolicy(cfg config.CORSConfig) (*OriginPolicy, error) {
	exact := make(map[string]struct{})
	if cfg.FrontendURL != "" {
		exact[cfg.FrontendURL] = struct{}{}
	}
	for _, o := range cfg.AllowOrigins {
		exact[o] = struct{}{}
	}

	patterns := make([]*regexp.Regexp, 0, len(cfg.AllowOriginPatterns))
	for _, p := range cfg.AllowOriginPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, re)
	}

	return &OriginPolicy{exact: exact, patterns: patterns}, nil
}

func (p *OriginPolicy) Allowed(origin string) bool {
	if _, ok := p.exact[origin]; ok {
		return true
	}
	for _, re := range p.patterns {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}

// AllowedOrigins rejects requests from origins outside the allow-list before
// any handler runs. Requests without an Origin header (curl, server-side
// callers) always pass. fiber's cors middleware is not used here because it
// only withholds response headers; this API requires an actual rejection.
func AllowedOrigins(policy *OriginPolicy) fiber.Handler {
	return func(c fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}

		if !policy.Allowed(origin) {
			slog.Warn("origin not allowed", "origin", origin)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "origin not allowed"})
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		c.Set(fiber.HeaderVary, fiber.HeaderOrigin)

		if c.Method() == fiber.MethodOptions {
			c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
