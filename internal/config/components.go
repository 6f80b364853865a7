package config

import (
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/suitereport/internal/report"
	"github.com/AndreyAkinshin/suitereport/internal/suite"
	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// Collector builds a suite collector for the configured layout.
func (c *Config) Collector(logger *zap.Logger) *suite.Collector {
	return &suite.Collector{
		Status: &testparser.StatusParser{
			FileName: c.StatusFile,
			Timing: testparser.TimingPhases{
				SharedLib:  c.TimingPhases.SharedLib,
				ModelBuild: c.TimingPhases.ModelBuild,
				Run:        c.TimingPhases.Run,
			},
		},
		SharedLibPrefix:  *c.SharedLibPrefix,
		ComparisonDir:    c.Comparison.Directory,
		ComparisonSuffix: c.Comparison.Suffix,
		Logger:           logger,
	}
}

// ReportOptions returns the report options for the configured codes and colors.
func (c *Config) ReportOptions(logger *zap.Logger) report.Options {
	return report.Options{
		BaselinePhase: c.BaselinePhase,
		PassResult:    c.PassResult,
		FailResult:    c.FailResult,
		PendResult:    c.PendResult,
		FailColor:     c.Colors.Fail,
		PendColor:     c.Colors.Pend,
		Logger:        logger,
	}
}
