package cmd

import (
	"github.com/spf13/cobra"
)

// newLifecycleCmd builds the start/stop/restart commands, which all forward
// their own name plus the named services verbatim.
func newLifecycleCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:               name + " [service...]",
		Short:             short,
		ValidArgsFunction: completeServiceArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newComposeApp()
			if err != nil {
				return err
			}
			return app.client.Run(cmd.Context(), append([]string{name}, args...)...)
		},
	}
}

func init() {
	rootCmd.AddCommand(newLifecycleCmd("start", "Start services"))
	rootCmd.AddCommand(newLifecycleCmd("stop", "Stop services"))
	rootCmd.AddCommand(newLifecycleCmd("restart", "Restart services"))
}
