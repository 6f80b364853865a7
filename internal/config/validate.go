package config

import (
	"fmt"
	"path/filepath"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a defaulted configuration for conflicts the schema cannot
// express.
func Validate(cfg *Config) error {
	if err := validateResults(cfg); err != nil {
		return err
	}
	if err := validateTimingPhases(cfg.TimingPhases); err != nil {
		return err
	}
	return validateOutputs(cfg)
}

func validateResults(cfg *Config) error {
	if cfg.FailResult == cfg.PassResult {
		return &ValidationError{Field: "fail_result", Message: "must differ from pass_result"}
	}
	if cfg.PendResult == cfg.PassResult {
		return &ValidationError{Field: "pend_result", Message: "must differ from pass_result"}
	}
	return nil
}

func validateTimingPhases(tp *TimingPhasesConfig) error {
	seen := map[string]string{}
	for _, p := range []struct{ field, phase string }{
		{"timing_phases.shared_lib", tp.SharedLib},
		{"timing_phases.model_build", tp.ModelBuild},
		{"timing_phases.run", tp.Run},
	} {
		if other, ok := seen[p.phase]; ok {
			return &ValidationError{
				Field:   p.field,
				Message: fmt.Sprintf("phase %q is already used by %s", p.phase, other),
			}
		}
		seen[p.phase] = p.field
	}
	return nil
}

func validateOutputs(cfg *Config) error {
	if cfg.Output == "" {
		return &ValidationError{Field: "output", Message: "must not be empty"}
	}
	if cfg.MetricsFile != "" && filepath.Clean(cfg.MetricsFile) == filepath.Clean(cfg.Output) {
		return &ValidationError{Field: "metrics_file", Message: "must differ from output"}
	}
	return nil
}
