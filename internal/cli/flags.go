package cli

import (
	"github.com/urfave/cli/v2"
)

// EnvVarPrefix prefixes the environment variable of every flag.
const EnvVarPrefix = "SUITEREPORT"

func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		EnvVars: prefixEnvVar("CONFIG"),
		Usage:   "Path to a YAML config file (default: nearest .suitereport.yaml above the suite root)",
	}
	OutputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		EnvVars: prefixEnvVar("OUTPUT"),
		Usage:   "Path of the markdown report (default: test_results.md)",
	}
	MetricsFileFlag = &cli.StringFlag{
		Name:    "metrics-file",
		EnvVars: prefixEnvVar("METRICS_FILE"),
		Usage:   "Also write Prometheus metrics in textfile format to this path",
	}
	PrintFlag = &cli.BoolFlag{
		Name:    "print",
		EnvVars: prefixEnvVar("PRINT"),
		Usage:   "Render the report to the terminal after writing it",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		EnvVars: prefixEnvVar("VERBOSE"),
		Usage:   "Enable debug logging",
	}
	QuietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		EnvVars: prefixEnvVar("QUIET"),
		Usage:   "Suppress the terminal summary",
	}
)

// Flags lists every flag accepted by the CLI.
var Flags = []cli.Flag{
	ConfigFlag,
	OutputFlag,
	MetricsFileFlag,
	PrintFlag,
	VerboseFlag,
	QuietFlag,
}
