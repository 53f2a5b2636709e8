package config

// Config is the top-level configuration structure for simctl.
type Config struct {
	Project Project `yaml:"project"`
	Compose Compose `yaml:"compose"`
	Update  Update  `yaml:"update"`
}

// Project identifies the compose project simctl drives.
type Project struct {
	Name      string `yaml:"name,omitempty"`      // simulator name; lower-cased into the default "-p <name>" flag pair
	Directory string `yaml:"directory,omitempty"` // compose project directory; the working directory when empty
}

// Compose controls how the orchestrator is invoked.
type Compose struct {
	Binary        string   `yaml:"binary,omitempty"`        // orchestrator binary (default: docker-compose)
	ExtraFlags    []string `yaml:"extraFlags,omitempty"`    // overrides the default project-scoping flags entirely
	RemoveOrphans *bool    `yaml:"removeOrphans,omitempty"` // default for `down --remove-orphans` (default: true)
	DockerGroup   string   `yaml:"dockerGroup,omitempty"`   // system group required for unprivileged container access
}

// Update configures the self-update command.
type Update struct {
	Repository string `yaml:"repository,omitempty"` // GitHub "owner/name" slug releases are fetched from
}

// RemoveOrphansDefault resolves the tri-state removeOrphans setting.
func (c Compose) RemoveOrphansDefault() bool {
	if c.RemoveOrphans == nil {
		return true
	}
	return *c.RemoveOrphans
}
