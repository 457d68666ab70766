package router

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/service/contact"
	"github.com/jaydeeprathod/portfolio-backend/internal/store"
)

type stubContactService struct{}

func (stubContactService) Submit(ctx context.Context, req contact.SubmitRequest) (*contact.Result, error) {
	return &contact.Result{State: contact.StateDelivered}, nil
}

func (stubContactService) Messages(ctx context.Context) ([]store.Submission, error) {
	return nil, nil
}

func newTestApp(adminToken string) *fiber.App {
	cfg := &config.Config{}
	cfg.Admin.Token = adminToken

	app := fiber.New()
	NewRouter(Params{Cfg: cfg, ContactSvc: stubContactService{}}).Register(app)
	return app
}

func getMessages(t *testing.T, app *fiber.App, authorization string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/messages", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestMessagesGatedWhenTokenConfigured(t *testing.T) {
	app := newTestApp("s3cret")

	if status := getMessages(t, app, ""); status != fiber.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", status)
	}
	if status := getMessages(t, app, "Bearer wrong"); status != fiber.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", status)
	}
	if status := getMessages(t, app, "Bearer s3cret"); status != fiber.StatusOK {
		t.Errorf("valid token: status = %d, want 200", status)
	}
}

func TestMessagesOpenWithoutToken(t *testing.T) {
	app := newTestApp("")

	if status := getMessages(t, app, ""); status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}

func TestContactRouteReachesHandler(t *testing.T) {
	app := newTestApp("")

	req := httptest.NewRequest("POST", "/api/contact",
		strings.NewReader(`{"name":"Ann","email":"ann@x.com","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
