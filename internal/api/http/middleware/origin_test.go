package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/jaydeeprathod/portfolio-backend/config"
)

func testPolicy(t *testing.T) *OriginPolicy {
	t.Helper()
	policy, err := NewOriginPolicy(config.CORSConfig{
		FrontendURL:         "http://localhost:3000",
		AllowOrigins:        []string{"https://portfolio-r4c2.vercel.app"},
		AllowOriginPatterns: []string{`\.vercel\.app$`},
	})
	if err != nil {
		t.Fatalf("NewOriginPolicy() error = %v", err)
	}
	return policy
}

func originApp(t *testing.T) *fiber.App {
	app := fiber.New()
	app.Use(AllowedOrigins(testPolicy(t)))
	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantStatus int
	}{
		{"no origin passes", "", fiber.StatusOK},
		{"frontend origin", "http://localhost:3000", fiber.StatusOK},
		{"deployed domain", "https://portfolio-r4c2.vercel.app", fiber.StatusOK},
		{"preview subdomain", "https://portfolio-git-main.vercel.app", fiber.StatusOK},
		{"unlisted origin", "https://evil.example.com", fiber.StatusForbidden},
		{"lookalike domain", "https://vercel.app.evil.com", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := originApp(t)

			req := httptest.NewRequest("GET", "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus == fiber.StatusOK && tt.origin != "" {
				if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.origin)
				}
			}
		})
	}
}

func TestAllowedOriginsPreflight(t *testing.T) {
	app := originApp(t)

	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Access-Control-Allow-Methods header missing")
	}
}

func TestNewOriginPolicyRejectsBadPattern(t *testing.T) {
	_, err := NewOriginPolicy(config.CORSConfig{AllowOriginPatterns: []string{"("}})
	if err == nil {
		t.Error("NewOriginPolicy() expected error for invalid pattern")
	}
}
