package cmd

import (
	"github.com/spf13/cobra"

	"simctl/internal/compose"
)

// psCmd lists containers. `status` is an alias with identical behavior.
var psCmd = &cobra.Command{
	Use:               "ps [service...]",
	Aliases:           []string{"status"},
	Short:             "List containers and their status",
	ValidArgsFunction: completeServiceArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newComposeApp()
		if err != nil {
			return err
		}
		return app.client.Run(cmd.Context(), compose.PsArgs(args)...)
	},
}

func init() {
	psCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(psCmd)
}
