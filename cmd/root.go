package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"simctl/internal/utils"
	"simctl/pkg/logging"
)

var (
	flagDirectory string
	flagProject   string
	flagVerbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simctl",
	Short: "Drive the simulator's docker-compose services",
	Long: `simctl wraps docker-compose for the simulator project: it forwards
lifecycle subcommands to the orchestrator with the right project scoping,
completes service names from the compose configuration, and can fix up
docker group membership for unprivileged container access.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. preflight failures, orchestrator exits)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if flagVerbose {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). The process exit code
// mirrors the forwarded orchestrator's exit code.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "simctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we exit with the child's status.
		os.Exit(utils.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDirectory, "directory", "C", "", "Compose project directory (overrides configuration)")
	rootCmd.PersistentFlags().StringVar(&flagProject, "project", "", "Compose project name (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
