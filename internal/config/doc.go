// Package config provides configuration management for simctl.
//
// Configuration is loaded and merged in the following order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (embedded in the binary)
//     - Sensible defaults so simctl works out-of-the-box
//
//  2. User configuration (~/.config/simctl/config.yaml)
//     - Personal settings that apply to every project
//
//  3. Project configuration (./.simctl/config.yaml)
//     - Settings shared by a team via version control
//
// The configuration file uses YAML format:
//
//	project:
//	  name: acme-sim        # becomes the default "-p acme-sim" flag pair
//	  directory: ./deploy   # where the compose file lives
//	compose:
//	  binary: docker-compose
//	  removeOrphans: true
//	  dockerGroup: docker
//	update:
//	  repository: jbardo/simctl
package config
