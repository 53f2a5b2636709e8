package cmd

import (
	"os"

	"simctl/internal/compose"
	"simctl/internal/config"
	"simctl/internal/utils"
)

// composeApp bundles the collaborators a subcommand needs: the effective
// configuration, the orchestrator client, and the service catalog used for
// completion and validation.
type composeApp struct {
	cfg     config.Config
	client  *compose.Client
	catalog *compose.ServiceCatalog
	dir     string
	flags   []string
}

// newComposeApp loads configuration, applies root-level flag overrides, and
// wires the compose client and service catalog on top of a real runner.
func newComposeApp() (*composeApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagProject != "" {
		cfg.Project.Name = flagProject
	}
	if flagDirectory != "" {
		cfg.Project.Directory = flagDirectory
	}

	var dirSrc compose.DirSource
	if cfg.Project.Directory != "" {
		dirSrc = compose.StaticDir(cfg.Project.Directory)
	} else {
		dirSrc = compose.ComputedDir(os.Getwd)
	}

	flags := cfg.Compose.ExtraFlags
	if len(flags) == 0 {
		flags = compose.ProjectFlags(cfg.Project.Name)
	}

	dir, err := dirSrc.Resolve()
	if err != nil {
		return nil, err
	}

	runner := utils.ExecRunner{}
	return &composeApp{
		cfg:     cfg,
		client:  compose.NewClient(cfg.Compose.Binary, dirSrc, compose.StaticFlags(flags...), runner),
		catalog: compose.NewServiceCatalog(cfg.Compose.Binary, runner),
		dir:     dir,
		flags:   flags,
	}, nil
}
