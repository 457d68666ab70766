package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/jaydeeprathod/portfolio-backend/cmd/http"
	systemcmd "github.com/jaydeeprathod/portfolio-backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Backend for the portfolio site's contact form.",
	Long: `Portfolio backend accepts contact-form submissions, forwards them by
email through a configured SMTP relay, and falls back to durable local
storage when email delivery is unavailable.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
}
