package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigDirs points the loader's mockable path funcs at temp dirs for
// the duration of one test.
func withConfigDirs(t *testing.T) (home string, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()

	origHome, origWd := osUserHomeDir, osGetwd
	osUserHomeDir = func() (string, error) { return home, nil }
	osGetwd = func() (string, error) { return project, nil }
	t.Cleanup(func() {
		osUserHomeDir = origHome
		osGetwd = origWd
	})
	return home, project
}

func writeConfigFile(t *testing.T, dir, subdir, content string) {
	t.Helper()
	path := filepath.Join(dir, subdir)
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, configFileName), []byte(content), 0o644))
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	withConfigDirs(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "simulator", cfg.Project.Name)
	assert.Equal(t, "docker-compose", cfg.Compose.Binary)
	assert.Equal(t, "docker", cfg.Compose.DockerGroup)
	assert.True(t, cfg.Compose.RemoveOrphansDefault())
}

func TestLoadUserConfigOverridesDefaults(t *testing.T) {
	home, _ := withConfigDirs(t)
	writeConfigFile(t, home, userConfigDir, "project:\n  name: acme\ncompose:\n  binary: podman-compose\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Project.Name)
	assert.Equal(t, "podman-compose", cfg.Compose.Binary)
	assert.Equal(t, "docker", cfg.Compose.DockerGroup, "unset fields keep defaults")
}

func TestLoadProjectConfigWinsOverUser(t *testing.T) {
	home, project := withConfigDirs(t)
	writeConfigFile(t, home, userConfigDir, "project:\n  name: acme\n")
	writeConfigFile(t, project, projectConfigDir, "project:\n  name: edge-sim\n  directory: ./deploy\ncompose:\n  removeOrphans: false\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "edge-sim", cfg.Project.Name)
	assert.Equal(t, "./deploy", cfg.Project.Directory)
	assert.False(t, cfg.Compose.RemoveOrphansDefault())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home, _ := withConfigDirs(t)
	writeConfigFile(t, home, userConfigDir, "project: [not a mapping\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestMergeConfigsExtraFlagsReplaceWholesale(t *testing.T) {
	base := Default()
	overlay := Config{}
	overlay.Compose.ExtraFlags = []string{"--project-directory", "/srv/sim"}

	merged := mergeConfigs(base, overlay)
	assert.Equal(t, []string{"--project-directory", "/srv/sim"}, merged.Compose.ExtraFlags)
	assert.Equal(t, base.Project.Name, merged.Project.Name)
}

func TestRemoveOrphansDefaultTriState(t *testing.T) {
	var c Compose
	assert.True(t, c.RemoveOrphansDefault())

	off := false
	c.RemoveOrphans = &off
	assert.False(t, c.RemoveOrphansDefault())

	on := true
	c.RemoveOrphans = &on
	assert.True(t, c.RemoveOrphansDefault())
}
