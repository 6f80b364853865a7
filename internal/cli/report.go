package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AndreyAkinshin/suitereport/internal/config"
	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
	"github.com/AndreyAkinshin/suitereport/internal/output"
	"github.com/AndreyAkinshin/suitereport/internal/report"
)

// cmdReport scans the suite root given as the only argument and writes the
// report.
func cmdReport(c *cli.Context, out *output.Writer) error {
	if c.NArg() != 1 {
		return suiteerrors.Configf("expected exactly one <suite-root> argument, got %d", c.NArg())
	}
	root := c.Args().First()
	out.SetQuiet(c.Bool(QuietFlag.Name))

	logger, err := newLogger(c.Bool(VerboseFlag.Name))
	if err != nil {
		return suiteerrors.Wrap(err, "failed to initialize logger")
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(c, root, out, logger)
	if err != nil {
		return err
	}

	collector := cfg.Collector(logger)
	tables, err := collector.Collect(root)
	if err != nil {
		return err
	}
	if len(tables.Results) == 0 {
		out.Warning("no test status found under %s", root)
	}

	rep, err := report.Build(tables, collector, cfg.ReportOptions(logger))
	if err != nil {
		return err
	}

	if err := report.WriteFile(cfg.Output, rep); err != nil {
		return err
	}
	logger.Info("Report written",
		zap.String("path", cfg.Output),
		zap.Int("tests", rep.Summary.NumTests()))

	if cfg.MetricsFile != "" {
		if err := report.WriteMetrics(cfg.MetricsFile, rep); err != nil {
			return err
		}
		logger.Info("Metrics written", zap.String("path", cfg.MetricsFile))
	}

	if c.Bool(PrintFlag.Name) {
		if err := printMarkdown(out, rep); err != nil {
			return err
		}
	}

	printSummary(out, rep, cfg)
	out.FinalSuccess("Report written to %s", cfg.Output)
	return nil
}

// loadConfig resolves the configuration: the --config file, else the nearest
// .suitereport.yaml above root, else defaults. Flags override the file.
func loadConfig(c *cli.Context, root string, out *output.Writer, logger *zap.Logger) (*config.Config, error) {
	path := c.String(ConfigFlag.Name)
	if path == "" {
		found, err := config.Find(root)
		switch {
		case errors.Is(err, config.ErrNotFound):
			logger.Debug("No config file found, using defaults", zap.String("root", root))
		case err != nil:
			return nil, suiteerrors.Wrap(err, "failed to locate config file")
		default:
			path = found
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		out.Info("Using config %s", path)
	}

	if c.IsSet(OutputFlag.Name) {
		cfg.Output = c.String(OutputFlag.Name)
	}
	if c.IsSet(MetricsFileFlag.Name) {
		cfg.MetricsFile = c.String(MetricsFileFlag.Name)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, &suiteerrors.ReportError{
			Kind:    suiteerrors.KindConfig,
			Message: "invalid options",
			Cause:   err,
		}
	}
	return cfg, nil
}

// newLogger builds a production zap logger. Only warnings are shown unless
// verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// printMarkdown renders the report for the terminal.
func printMarkdown(out *output.Writer, rep *report.Report) error {
	var buf bytes.Buffer
	if err := report.Render(&buf, rep); err != nil {
		return suiteerrors.Wrap(err, "render report")
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return suiteerrors.Wrap(err, "failed to initialize markdown renderer")
	}
	rendered, err := renderer.Render(buf.String())
	if err != nil {
		return suiteerrors.Wrap(err, "render report for terminal")
	}
	_, err = fmt.Fprint(out.Stdout(), rendered)
	return err
}
