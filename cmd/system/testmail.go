package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/pkg/mailer"
)

// NewTestMailCommand sends one probe email through the configured relay,
// for checking credentials before a deploy.
func NewTestMailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test-mail",
		Short: "Send a test email through the configured relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			client, err := mailer.NewFromCentral(cfg.Email)
			if err != nil {
				return err
			}
			if !client.Configured() {
				return fmt.Errorf("mail credentials are not configured")
			}

			msg := mailer.BuildContactEmail(cfg.Email.To, cfg.Email.Username, cfg.Email.FromName, mailer.ContactEmailData{
				Name:    "Relay Check",
				Email:   cfg.Email.Username,
				Message: fmt.Sprintf("Test message sent at %s.", time.Now().Format(time.RFC3339)),
			})

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			id, err := client.Send(ctx, msg)
			if err != nil {
				return err
			}
			fmt.Printf("message accepted by relay, id %s\n", id)
			return nil
		},
	}
}
