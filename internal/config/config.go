// Package config provides loading and validation of the suitereport YAML
// configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
	"github.com/AndreyAkinshin/suitereport/internal/schema"
)

// Config represents the complete .suitereport.yaml configuration.
type Config struct {
	Output          string              `yaml:"output,omitempty"`
	MetricsFile     string              `yaml:"metrics_file,omitempty"`
	StatusFile      string              `yaml:"status_file,omitempty"`
	SharedLibPrefix *string             `yaml:"shared_lib_prefix,omitempty"` // nil means default; "" disables the filter
	BaselinePhase   string              `yaml:"baseline_phase,omitempty"`
	PassResult      string              `yaml:"pass_result,omitempty"`
	FailResult      string              `yaml:"fail_result,omitempty"`
	PendResult      string              `yaml:"pend_result,omitempty"`
	TimingPhases    *TimingPhasesConfig `yaml:"timing_phases,omitempty"`
	Comparison      *ComparisonConfig   `yaml:"comparison,omitempty"`
	Colors          *ColorsConfig       `yaml:"colors,omitempty"`
}

// TimingPhasesConfig names the status phases that carry timings.
type TimingPhasesConfig struct {
	SharedLib  string `yaml:"shared_lib,omitempty"`
	ModelBuild string `yaml:"model_build,omitempty"`
	Run        string `yaml:"run,omitempty"`
}

// ComparisonConfig locates comparison output files inside a test directory.
type ComparisonConfig struct {
	Directory string `yaml:"directory,omitempty"`
	Suffix    string `yaml:"suffix,omitempty"`
}

// ColorsConfig sets the colors of summary lines in the report.
type ColorsConfig struct {
	Fail string `yaml:"fail,omitempty"`
	Pend string `yaml:"pend,omitempty"`
}

// Load reads, validates, and parses a configuration file, then applies
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &suiteerrors.ReportError{
			Kind:    suiteerrors.KindConfig,
			Message: "failed to read config file",
			Path:    path,
			Cause:   err,
		}
	}

	return Parse(data, path)
}

// Parse validates and decodes config data. source names the data in errors.
func Parse(data []byte, source string) (*Config, error) {
	if err := schema.ValidateConfig(data); err != nil {
		return nil, &suiteerrors.ReportError{
			Kind:    suiteerrors.KindConfig,
			Message: "invalid config",
			Path:    source,
			Cause:   err,
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &suiteerrors.ReportError{
			Kind:    suiteerrors.KindConfig,
			Message: "failed to parse config file",
			Path:    source,
			Cause:   err,
		}
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, &suiteerrors.ReportError{
			Kind:    suiteerrors.KindConfig,
			Message: "invalid config",
			Path:    source,
			Cause:   err,
		}
	}
	return &cfg, nil
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
