package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"simctl/internal/compose"
	"simctl/internal/dockergroup"
	"simctl/pkg/logging"
)

var (
	upScales        []string
	upForceRecreate bool
)

// upCmd creates and starts the project's containers.
var upCmd = &cobra.Command{
	Use:   "up [service...]",
	Short: "Create and start containers",
	Long: `Create and start containers for the given services (all services when
none are named). Containers are started detached and images are rebuilt.

The command checks that the current user may talk to the container runtime
first; run 'simctl fix-up' if it complains about group membership.`,
	ValidArgsFunction: completeServiceArgs,
	RunE:              runUp,
}

func init() {
	upCmd.Flags().StringArrayVar(&upScales, "scale", nil, "Scale a service, using the format 'service=number' (repeatable)")
	upCmd.Flags().BoolVar(&upForceRecreate, "force-recreate", false, "Force the recreation of the services")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	app, err := newComposeApp()
	if err != nil {
		return err
	}
	if err := checkDockerGroup(app.cfg.Compose.DockerGroup); err != nil {
		return err
	}
	return app.client.Run(cmd.Context(), compose.UpArgs(compose.UpOptions{
		Scales:        upScales,
		ForceRecreate: upForceRecreate,
		Services:      args,
	})...)
}

// checkDockerGroup aborts `up` when the user verifiably lacks container
// runtime access. Platforms that cannot enumerate groups skip the check;
// an enumeration failure on a supported platform is reported but does not
// block, since the orchestrator itself will produce the authoritative error.
func checkDockerGroup(group string) error {
	err := dockergroup.Check(group)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dockergroup.ErrNotMember):
		return err
	case errors.Is(err, dockergroup.ErrUnsupported):
		return nil
	default:
		logging.Warn("preflight", "docker group check skipped: %v", err)
		return nil
	}
}
