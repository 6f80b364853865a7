package suite

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// CollectDiffs parses the comparison files of each test directory. Tests
// without a comparison directory or without matching files contribute
// nothing; an empty testDirs yields an empty result.
func (c *Collector) CollectDiffs(testDirs []string) ([]testparser.DiffRecord, error) {
	records := []testparser.DiffRecord{}

	for _, dir := range testDirs {
		name := TestName(dir)
		files, err := c.comparisonFiles(dir)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			diffs, err := testparser.ParseDiffFile(file, name)
			if err != nil {
				return nil, err
			}
			c.Logger.Debug("Parsed comparison file",
				zap.String("file", file),
				zap.Int("variables", len(diffs)))
			records = append(records, diffs...)
		}
	}

	return records, nil
}

// comparisonFiles returns the sorted paths of <dir>/<ComparisonDir>/*<ComparisonSuffix>.
// Directory entries are matched by suffix rather than globbed so that test
// paths containing glob metacharacters are handled literally.
func (c *Collector) comparisonFiles(dir string) ([]string, error) {
	runDir := filepath.Join(dir, c.ComparisonDir)
	entries, err := os.ReadDir(runDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Logger.Debug("No comparison directory", zap.String("path", runDir))
			return nil, nil
		}
		return nil, suiteerrors.Input(runDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), c.ComparisonSuffix) {
			continue
		}
		files = append(files, filepath.Join(runDir, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}
