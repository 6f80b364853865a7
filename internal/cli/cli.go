// Package cli provides the command-line interface of suitereport.
package cli

import (
	"github.com/urfave/cli/v2"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
	"github.com/AndreyAkinshin/suitereport/internal/output"
)

// Version is set at build time.
var Version = "dev"

func init() {
	// -v belongs to --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, output.New())
}

func run(args []string, out *output.Writer) int {
	app := newApp(out)
	if err := app.Run(append([]string{app.Name}, args...)); err != nil {
		out.ErrorPrefix("%v", err)
		code := suiteerrors.GetExitCode(err)
		if code == suiteerrors.ExitConfigError {
			out.Hint("run 'suitereport --help' for usage")
		}
		return code
	}
	return suiteerrors.ExitSuccess
}

func newApp(out *output.Writer) *cli.App {
	return &cli.App{
		Name:  "suitereport",
		Usage: "summarize a regression test suite as a markdown report",
		Description: "Scans every test directory under <suite-root>, tallies the TestStatus\n" +
			"phase results, extracts field differences from failed baseline\n" +
			"comparisons, and writes a markdown report.",
		ArgsUsage:       "<suite-root>",
		Version:         Version,
		Flags:           Flags,
		HideHelpCommand: true,
		Writer:          out.Stdout(),
		ErrWriter:       out.Stderr(),
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return suiteerrors.Config(err.Error())
		},
		// Errors are mapped to exit codes by run, not by os.Exit.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return cmdReport(c, out)
		},
	}
}
