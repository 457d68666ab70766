package app

import (
	"go.uber.org/fx"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/service/contact"
	"github.com/jaydeeprathod/portfolio-backend/internal/store"
	"github.com/jaydeeprathod/portfolio-backend/pkg/mailer"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideContactService),
)

func ProvideContactService(m *mailer.Client, s *store.FileStore, cfg *config.Config) contact.Service {
	return contact.New(m, s, cfg.Email)
}
