package cmd

import (
	"github.com/spf13/cobra"
)

// completeServiceArgs offers declared service names for every positional
// argument. Discovery failures yield no candidates: completion must never
// break the shell.
func completeServiceArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	app, err := newComposeApp()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	candidates := app.catalog.CompleteServices(cmd.Context(), app.dir, app.flags, toComplete)
	return candidates, cobra.ShellCompDirectiveNoFileComp
}

// completeFirstServiceArg completes only the leading argument; the trailing
// arguments of exec/run/build belong to the container command, not to us.
func completeFirstServiceArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeServiceArgs(cmd, args, toComplete)
}
