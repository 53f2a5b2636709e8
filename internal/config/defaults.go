package config

// Default returns the built-in configuration. It is the base layer every
// user or project file is merged onto, so simctl works with no file at all.
func Default() Config {
	return Config{
		Project: Project{
			Name: "simulator",
		},
		Compose: Compose{
			Binary:      "docker-compose",
			DockerGroup: "docker",
		},
		Update: Update{
			Repository: "jbardo/simctl",
		},
	}
}
