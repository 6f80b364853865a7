package config

import (
	"github.com/AndreyAkinshin/suitereport/internal/report"
	"github.com/AndreyAkinshin/suitereport/internal/suite"
	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// Default configuration values.
const (
	DefaultFailColor = "red"
	DefaultPendColor = "orange"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyReportDefaults(cfg)
	applyStatusDefaults(cfg)
	applyComparisonDefaults(cfg)
	applyColorDefaults(cfg)
}

func applyReportDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = report.DefaultOutput
	}
}

func applyStatusDefaults(cfg *Config) {
	if cfg.StatusFile == "" {
		cfg.StatusFile = testparser.DefaultStatusFile
	}
	if cfg.SharedLibPrefix == nil {
		prefix := suite.DefaultSharedLibPrefix
		cfg.SharedLibPrefix = &prefix
	}
	if cfg.BaselinePhase == "" {
		cfg.BaselinePhase = testparser.PhaseBaseline
	}
	if cfg.PassResult == "" {
		cfg.PassResult = testparser.ResultPass
	}
	if cfg.FailResult == "" {
		cfg.FailResult = testparser.ResultFail
	}
	if cfg.PendResult == "" {
		cfg.PendResult = testparser.ResultPend
	}

	if cfg.TimingPhases == nil {
		cfg.TimingPhases = &TimingPhasesConfig{}
	}
	defaults := testparser.DefaultTimingPhases()
	if cfg.TimingPhases.SharedLib == "" {
		cfg.TimingPhases.SharedLib = defaults.SharedLib
	}
	if cfg.TimingPhases.ModelBuild == "" {
		cfg.TimingPhases.ModelBuild = defaults.ModelBuild
	}
	if cfg.TimingPhases.Run == "" {
		cfg.TimingPhases.Run = defaults.Run
	}
}

func applyComparisonDefaults(cfg *Config) {
	if cfg.Comparison == nil {
		cfg.Comparison = &ComparisonConfig{}
	}
	if cfg.Comparison.Directory == "" {
		cfg.Comparison.Directory = suite.DefaultComparisonDir
	}
	if cfg.Comparison.Suffix == "" {
		cfg.Comparison.Suffix = suite.DefaultComparisonSuffix
	}
}

func applyColorDefaults(cfg *Config) {
	if cfg.Colors == nil {
		cfg.Colors = &ColorsConfig{}
	}
	if cfg.Colors.Fail == "" {
		cfg.Colors.Fail = DefaultFailColor
	}
	if cfg.Colors.Pend == "" {
		cfg.Colors.Pend = DefaultPendColor
	}
}
