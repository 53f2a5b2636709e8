package cmd

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"simctl/internal/color"
	"simctl/internal/config"
	"simctl/internal/utils"
)

// fixUpCmd grants the current user container runtime access. It does not
// talk to the orchestrator at all.
var fixUpCmd = &cobra.Command{
	Use:   "fix-up",
	Short: "Add the current user to the docker group",
	Long: `Add the current user to the container runtime group using sudo, then
start a fresh login session so the new membership takes effect.`,
	Args: cobra.NoArgs,
	RunE: runFixUp,
}

func init() {
	rootCmd.AddCommand(fixUpCmd)
}

func runFixUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	current, err := user.Current()
	if err != nil {
		return fmt.Errorf("resolving current user: %w", err)
	}

	group := cfg.Compose.DockerGroup
	runner := utils.ExecRunner{}
	if err := runner.Run(cmd.Context(), "", "sudo", "adduser", current.Username, group); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.Success.Render(fmt.Sprintf("Added %s to the %q group", current.Username, group)))

	return runner.Run(cmd.Context(), "", "sudo", "login")
}
