package cmd

import (
	"github.com/spf13/cobra"

	"simctl/internal/compose"
)

var downRemoveOrphans bool

// downCmd stops and removes the project's containers and networks.
var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop and remove containers, networks, images, and volumes",
	Long: `Stop and remove the project's containers and networks. Containers that
are no longer in the current configuration are removed too unless
--remove-orphans=false is given.`,
	Args: cobra.NoArgs,
	RunE: runDown,
}

func init() {
	downCmd.Flags().BoolVar(&downRemoveOrphans, "remove-orphans", true, "Remove containers of the project that are not in the current config")
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	app, err := newComposeApp()
	if err != nil {
		return err
	}
	removeOrphans := downRemoveOrphans
	if !cmd.Flags().Changed("remove-orphans") {
		removeOrphans = app.cfg.Compose.RemoveOrphansDefault()
	}
	return app.client.Run(cmd.Context(), compose.DownArgs(removeOrphans)...)
}
