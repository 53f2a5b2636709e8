package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"simctl/internal/color"
	"simctl/internal/compose"
)

var (
	configServices bool
	configCopy     bool
)

// configCmd validates and shows the rendered compose configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and view the compose file",
	Long: `Validate and print the fully rendered compose configuration.
With --services only the declared service names are listed, one per line.
With --copy the output goes to the system clipboard instead of stdout.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configServices, "services", false, "List the services instead of the whole configuration")
	configCmd.Flags().BoolVar(&configCopy, "copy", false, "Copy the output to the clipboard instead of printing it")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	app, err := newComposeApp()
	if err != nil {
		return err
	}

	if configCopy {
		out, err := app.client.Capture(cmd.Context(), compose.ConfigArgs(configServices)...)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copying configuration to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.Success.Render("Compose configuration copied to clipboard"))
		return nil
	}

	return app.client.Run(cmd.Context(), compose.ConfigArgs(configServices)...)
}
