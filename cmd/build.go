package cmd

import (
	"github.com/spf13/cobra"
)

// buildCmd and imagesCmd are plain pass-throughs: everything after the
// subcommand name is forwarded to the orchestrator verbatim.

var buildCmd = &cobra.Command{
	Use:               "build [service] [args...]",
	Short:             "Build the container images",
	ValidArgsFunction: completeFirstServiceArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newComposeApp()
		if err != nil {
			return err
		}
		return app.client.Run(cmd.Context(), append([]string{"build"}, args...)...)
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images [args...]",
	Short: "List images used by the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newComposeApp()
		if err != nil {
			return err
		}
		return app.client.Run(cmd.Context(), append([]string{"images"}, args...)...)
	},
}

func init() {
	buildCmd.Flags().SetInterspersed(false)
	imagesCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(imagesCmd)
}
