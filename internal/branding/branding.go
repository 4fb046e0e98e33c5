// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "pdtgen",
			DisplayName: "PDTGen",
			Description: "Eclipse PDT project generator for Composer packages",
			HomeDir:     ".pdtgen",
			EnvPrefix:   "PDTGEN",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pdtgen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "PDTGen").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".pdtgen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PDTGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("workdir") → "PDTGEN_WORKDIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
