package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/store"
)

// NewMessagesCommand dumps the fallback store, so stored submissions can be
// read without hitting the HTTP endpoint.
func NewMessagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "Print submissions held in the fallback store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			subs, err := store.NewFileStore(cfg.Storage.MessagesPath).ReadAll()
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Println("no stored messages")
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(subs)
		},
	}
}
