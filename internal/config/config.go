package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdtgen-labs/pdtgen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. Each is also readable from the environment as PDTGEN_<KEY>.
const (
	KeyWorkDir  = "workdir"
	KeyManifest = "manifest"
	KeyLogLevel = "log_level"
)

// Defaults applied when neither the environment nor the config file set a key.
const (
	DefaultWorkDir  = "."
	DefaultManifest = "composer.json"
	DefaultLogLevel = "warn"
)

// Settings holds the resolved configuration for one invocation.
type Settings struct {
	WorkDir  string
	Manifest string
	LogLevel string
}

// Dir returns the path to the pdtgen config directory (~/.pdtgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pdtgen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from the config file and environment. A missing config
// file is not an error; an unreadable or malformed one is. The manifest path
// is resolved inside the work directory, so an absolute one is rejected.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyWorkDir, DefaultWorkDir)
	v.SetDefault(KeyManifest, DefaultManifest)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if _, err := os.Stat(FilePath()); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", FilePath(), err)
		}
	}

	s := &Settings{
		WorkDir:  v.GetString(KeyWorkDir),
		Manifest: v.GetString(KeyManifest),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if s.WorkDir == "" {
		s.WorkDir = DefaultWorkDir
	}
	if s.Manifest == "" {
		s.Manifest = DefaultManifest
	}
	if filepath.IsAbs(s.Manifest) {
		return nil, fmt.Errorf("%s %q must be relative to %s", KeyManifest, s.Manifest, KeyWorkDir)
	}
	return s, nil
}
