// Package suite walks a test suite directory and collects per-test status,
// timing, and baseline difference data into flat tables.
package suite

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// Defaults for the suite directory layout.
const (
	DefaultSharedLibPrefix  = "sharedlibroot"
	DefaultComparisonDir    = "run"
	DefaultComparisonSuffix = ".nc.cprnc.out"
)

// Test is one test directory and its parsed status.
type Test struct {
	Name   string
	Path   string
	Phases []testparser.PhaseResult
	Timing testparser.Timing
}

// ResultRow is one phase result, tagged with its test.
type ResultRow struct {
	Phase  string
	Result string
	Name   string
	Path   string
}

// TimingRow holds the timings of one test.
type TimingRow struct {
	Name string
	testparser.Timing
}

// Tables is the aggregated output of a suite scan. Both tables are sorted by
// test name; rows of the same test keep status file order.
type Tables struct {
	Root    string
	Results []ResultRow
	Timings []TimingRow
}

// Collector scans suite directories.
type Collector struct {
	Status           *testparser.StatusParser
	SharedLibPrefix  string
	ComparisonDir    string
	ComparisonSuffix string
	Logger           *zap.Logger
}

// NewCollector creates a collector with the default layout.
func NewCollector() *Collector {
	return &Collector{
		Status:           testparser.NewStatusParser(),
		SharedLibPrefix:  DefaultSharedLibPrefix,
		ComparisonDir:    DefaultComparisonDir,
		ComparisonSuffix: DefaultComparisonSuffix,
		Logger:           zap.NewNop(),
	}
}

// Collect parses every test directory directly under root.
func (c *Collector) Collect(root string) (*Tables, error) {
	dirs, err := c.testDirs(root)
	if err != nil {
		return nil, err
	}

	tests := make([]Test, 0, len(dirs))
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		status, err := c.Status.ParseDir(path)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("Parsed test",
			zap.String("path", path),
			zap.Int("phases", len(status.Phases)))
		if len(status.Phases) == 0 {
			c.Logger.Debug("No status recorded", zap.String("path", path))
		}

		tests = append(tests, Test{
			Name:   TestName(path),
			Path:   path,
			Phases: status.Phases,
			Timing: status.Timing,
		})
	}

	return newTables(root, tests), nil
}

// testDirs returns the sorted names of the test directories under root,
// skipping shared library build directories.
func (c *Collector) testDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, suiteerrors.Input(root, err)
	}

	var dirs []string
	for _, entry := range entries {
		name := entry.Name()
		if c.SharedLibPrefix != "" && strings.HasPrefix(name, c.SharedLibPrefix) {
			continue
		}
		if !isDir(filepath.Join(root, name), entry) {
			continue
		}
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)

	return dirs, nil
}

// isDir reports whether entry is a directory, following symlinks.
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func newTables(root string, tests []Test) *Tables {
	tables := &Tables{
		Root:    root,
		Results: []ResultRow{},
		Timings: make([]TimingRow, 0, len(tests)),
	}

	for _, test := range tests {
		for _, pr := range test.Phases {
			tables.Results = append(tables.Results, ResultRow{
				Phase:  pr.Phase,
				Result: pr.Result,
				Name:   test.Name,
				Path:   test.Path,
			})
		}
		tables.Timings = append(tables.Timings, TimingRow{Name: test.Name, Timing: test.Timing})
	}

	sort.SliceStable(tables.Results, func(i, j int) bool {
		return tables.Results[i].Name < tables.Results[j].Name
	})
	sort.SliceStable(tables.Timings, func(i, j int) bool {
		return tables.Timings[i].Name < tables.Timings[j].Name
	})

	return tables
}
