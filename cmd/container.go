package cmd

import (
	"github.com/spf13/cobra"

	"simctl/internal/compose"
)

// newContainerCmd builds the exec/run commands: exactly one service followed
// by the command to execute inside it. Flag parsing stops at the first
// positional argument so options meant for the container command pass
// through unmodified.
func newContainerCmd(name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:               name + " <service> [command...]",
		Short:             short,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeFirstServiceArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newComposeApp()
			if err != nil {
				return err
			}
			return app.client.Run(cmd.Context(), compose.ContainerCommandArgs(name, args[0], args[1:])...)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func init() {
	rootCmd.AddCommand(newContainerCmd("exec", "Execute a command in the running container"))
	rootCmd.AddCommand(newContainerCmd("run", "Run a one-off command in the container"))
}
