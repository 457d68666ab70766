package system

import "github.com/spf13/cobra"

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Operational utilities",
	}

	cmd.AddCommand(NewMessagesCommand())
	cmd.AddCommand(NewTestMailCommand())

	return cmd
}
