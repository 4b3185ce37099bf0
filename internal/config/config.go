// Package config loads dockgrid configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Shell     ShellConfig
	Telemetry TelemetryConfig
}

// ShellConfig controls the command spawned inside shell panels.
type ShellConfig struct {
	Command string
	WorkDir string
}

// TelemetryConfig holds OTLP trace export settings. Export is off unless
// explicitly enabled.
type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
}

// Load reads configuration from ~/.config/dockgrid/config.toml (or the file
// named by DOCKGRID_CONFIG) with DOCKGRID_* env overrides. Missing files are
// fine; defaults make the binary runnable with no config at all.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("shell.command", defaultShell())
	v.SetDefault("shell.workdir", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("DOCKGRID_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dockgrid"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCKGRID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.ReadInConfig() // file is optional

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "sh"
}
