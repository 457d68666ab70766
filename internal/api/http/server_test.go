package http

import (
	"testing"
	"time"

	"github.com/jaydeeprathod/portfolio-backend/config"
)

func TestNewFiberConfigTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.TimeoutSeconds = 45

	fc := newFiberConfig(cfg)
	want := 45 * time.Second
	if fc.ReadTimeout != want || fc.WriteTimeout != want || fc.IdleTimeout != want {
		t.Errorf("timeouts = %v/%v/%v, want %v each",
			fc.ReadTimeout, fc.WriteTimeout, fc.IdleTimeout, want)
	}
}

func TestNewFiberConfigZeroTimeout(t *testing.T) {
	fc := newFiberConfig(&config.Config{})
	if fc.ReadTimeout != 0 || fc.WriteTimeout != 0 || fc.IdleTimeout != 0 {
		t.Errorf("timeouts = %v/%v/%v, want zero",
			fc.ReadTimeout, fc.WriteTimeout, fc.IdleTimeout)
	}
}
