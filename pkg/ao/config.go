package ao

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bryankaraffa/go-ao/internal/log"
)

const (
	// ConfigFileName is the config file name (without extension) searched for
	ConfigFileName = "agent-orchestrator"

	DefaultPort               = 3000
	DefaultTerminalPort       = 14800
	DefaultDirectTerminalPort = 14801
)

// newConfigViper returns a viper instance with the orchestrator defaults,
// search paths and environment bindings applied
func newConfigViper() *viper.Viper {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.agent-orchestrator")

	// Set default values
	v.SetDefault("port", DefaultPort)
	v.SetDefault("terminalport", DefaultTerminalPort)
	v.SetDefault("directterminalport", DefaultDirectTerminalPort)

	// Bind environment variables (these override config file values)
	_ = v.BindEnv("config_path", "AO_CONFIG_PATH")
	_ = v.BindEnv("port", "AO_PORT")
	_ = v.BindEnv("terminalport", "AO_TERMINAL_PORT")
	_ = v.BindEnv("directterminalport", "AO_DIRECT_TERMINAL_PORT")

	return v
}

// LoadConfig loads the orchestrator configuration.
//
// The file is taken from path when given, then from AO_CONFIG_PATH, and
// otherwise searched for as agent-orchestrator.yaml in the working directory
// and in $HOME/.agent-orchestrator. Ports fall back to their defaults and may
// be overridden with AO_PORT, AO_TERMINAL_PORT and AO_DIRECT_TERMINAL_PORT.
func LoadConfig(path string) (OrchestratorConfig, error) {
	return loadConfig(NewOSFileSystem(), newConfigViper(), path)
}

func loadConfig(fs FileSystem, v *viper.Viper, path string) (OrchestratorConfig, error) {
	if path == "" {
		path = v.GetString("config_path")
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return OrchestratorConfig{}, &ConfigError{Op: "locate", Err: fmt.Errorf("no %s.yaml found in . or $HOME/.agent-orchestrator", ConfigFileName)}
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return OrchestratorConfig{}, &ConfigError{Op: "parse", Path: path, Err: err}
		}
		return OrchestratorConfig{}, &ConfigError{Op: "read", Path: path, Err: err}
	}
	path = v.ConfigFileUsed()

	data, err := fs.ReadFile(path)
	if err != nil {
		return OrchestratorConfig{}, &ConfigError{Op: "read", Path: path, Err: err}
	}

	var cfg OrchestratorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OrchestratorConfig{}, &ConfigError{Op: "parse", Path: path, Err: err}
	}

	cfg.Port = v.GetInt("port")
	cfg.TerminalPort = v.GetInt("terminalport")
	cfg.DirectTerminalPort = v.GetInt("directterminalport")
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	cfg.ConfigPath = path

	if err := cfg.Validate(); err != nil {
		return OrchestratorConfig{}, &ConfigError{Op: "validate", Path: path, Err: err}
	}

	log.Debug("loaded config", "path", path, "port", cfg.Port, "projects", len(cfg.Projects))
	return cfg, nil
}

// Validate checks the configuration shape. It reports every missing
// required field, not just the first one.
func (c OrchestratorConfig) Validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, &ValidationError{Field: "port", Value: fmt.Sprint(c.Port), Message: "port must be positive"})
	}

	for _, id := range c.ProjectIDs() {
		p := c.Projects[id]
		required := []struct {
			field string
			value string
		}{
			{"name", p.Name},
			{"repo", p.Repo},
			{"path", p.Path},
			{"defaultBranch", p.DefaultBranch},
			{"sessionPrefix", p.SessionPrefix},
		}
		for _, r := range required {
			if r.value == "" {
				errs = append(errs, &ValidationError{
					Field:   fmt.Sprintf("projects.%s.%s", id, r.field),
					Message: r.field + " is required",
				})
			}
		}
	}

	return errors.Join(errs...)
}
