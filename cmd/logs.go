package cmd

import (
	"github.com/spf13/cobra"

	"simctl/internal/compose"
)

// logsCmd follows container output. The invocation blocks until interrupted;
// output streams straight through without buffering.
var logsCmd = &cobra.Command{
	Use:               "logs [service...]",
	Short:             "View output logs from containers",
	ValidArgsFunction: completeServiceArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newComposeApp()
		if err != nil {
			return err
		}
		return app.client.Run(cmd.Context(), compose.LogsArgs(args)...)
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
