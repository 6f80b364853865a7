package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
)

// DefaultOutput is the report file written when no path is configured.
const DefaultOutput = "test_results.md"

const (
	noData  = "No data."
	missing = "n/a"
)

// Render writes the markdown report to w.
func Render(w io.Writer, rep *Report) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Test Results for %s\n\n", rep.Root)

	buf.WriteString("## Testing Summary\n\n")
	fmt.Fprintf(&buf, "A total of %d tests were run\n\n", rep.Summary.NumTests())
	for _, phase := range rep.Summary.Phases() {
		if n := rep.Summary.Count(rep.opts.FailResult, phase); n > 0 {
			buf.WriteString(colored(fmt.Sprintf("%d %s tests failed.", n, phase), rep.opts.FailColor))
		}
		if n := rep.Summary.Count(rep.opts.PendResult, phase); n > 0 {
			buf.WriteString(colored(fmt.Sprintf("%d %s tests are pending.", n, phase), rep.opts.PendColor))
		}
	}

	buf.WriteString("## All Non-Passing Tests\n\n")
	buf.WriteString(nonPassingTable(rep))

	buf.WriteString("## Difference Data\n\n")
	buf.WriteString(diffTable(rep))

	buf.WriteString("## Timing\n\n")
	buf.WriteString(timingTable(rep))

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile renders the report and overwrites path with it. Nothing is
// written if rendering fails.
func WriteFile(path string, rep *Report) error {
	var buf bytes.Buffer
	if err := Render(&buf, rep); err != nil {
		return suiteerrors.Wrap(err, "render report")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return suiteerrors.Wrap(err, "write report")
	}
	rep.opts.Logger.Debug("Report written", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return nil
}

// colored wraps s in an inline HTML span so markdown viewers show it in color.
func colored(s, color string) string {
	return fmt.Sprintf("<span style=\"color:%s\">%s</span>\n\n", color, s)
}

func nonPassingTable(rep *Report) string {
	if len(rep.NonPassing) == 0 {
		return section(noData)
	}
	t := newTable(table.Row{"phase", "result", "name", "path"})
	for _, row := range rep.NonPassing {
		t.AppendRow(table.Row{row.Phase, row.Result, row.Name, row.Path})
	}
	return section(t.RenderMarkdown())
}

func diffTable(rep *Report) string {
	if len(rep.MaxDiffs) == 0 {
		return section(noData)
	}
	t := newTable(table.Row{"test", "variable", "max diff", "max normalized diff"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, m := range rep.MaxDiffs {
		t.AppendRow(table.Row{m.Test, m.Variable, formatDiff(m.Diff), formatDiff(m.NormalizedDiff)})
	}
	return section(t.RenderMarkdown())
}

func timingTable(rep *Report) string {
	if len(rep.Timings) == 0 {
		return section(noData)
	}
	t := newTable(table.Row{"name", "lib time", "build time", "run time"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, row := range rep.Timings {
		t.AppendRow(table.Row{row.Name, formatSeconds(row.LibTime), formatSeconds(row.BuildTime), formatSeconds(row.RunTime)})
	}
	return section(t.RenderMarkdown())
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)
	t.AppendHeader(header)
	return t
}

func section(body string) string {
	return body + "\n\n"
}

func formatDiff(v float64) string {
	if math.IsNaN(v) {
		return missing
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
