package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/simctl"
	projectConfigDir = ".simctl"
	configFileName   = "config.yaml"
)

// Load builds the effective configuration by layering default, user, and
// project settings, in that order.
func Load() (Config, error) {
	config := Default()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and keep going.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Fields left at
// their zero value in the overlay keep the base value.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Project.Name != "" {
		merged.Project.Name = overlay.Project.Name
	}
	if overlay.Project.Directory != "" {
		merged.Project.Directory = overlay.Project.Directory
	}

	if overlay.Compose.Binary != "" {
		merged.Compose.Binary = overlay.Compose.Binary
	}
	if len(overlay.Compose.ExtraFlags) > 0 {
		merged.Compose.ExtraFlags = append([]string(nil), overlay.Compose.ExtraFlags...)
	}
	if overlay.Compose.RemoveOrphans != nil {
		merged.Compose.RemoveOrphans = overlay.Compose.RemoveOrphans
	}
	if overlay.Compose.DockerGroup != "" {
		merged.Compose.DockerGroup = overlay.Compose.DockerGroup
	}

	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}
