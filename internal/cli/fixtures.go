package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/calvinalkan/mdtest/pkg/mdtest"
	"github.com/calvinalkan/mdtest/pkg/mdtest/jsonopts"
)

// rootOptions builds the root options every fixture document inherits. With
// no options_file configured, the root is empty.
func rootOptions(cfg Config, workDir string) (jsonopts.Map, error) {
	if cfg.OptionsFile == "" {
		return jsonopts.Map{}, nil
	}

	path := cfg.OptionsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return nil, fmt.Errorf("read options file: %w", err)
	}

	opts, err := jsonopts.Map{}.MergeSerialized(string(data))
	if err != nil {
		return nil, fmt.Errorf("options file %s: %w", cfg.OptionsFile, err)
	}

	return opts, nil
}

// globFixtures resolves a doublestar pattern against workDir and returns
// the matching paths, sorted, relative to workDir.
func globFixtures(workDir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %s", errFixtureGlobInvalid, pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(workDir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	slices.Sort(matches)

	return matches, nil
}

// parseFixtureFile reads and parses one fixture document relative to
// workDir.
func parseFixtureFile(workDir, file string, root jsonopts.Map) ([]mdtest.TestCase[jsonopts.Map], error) {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	cases, err := mdtest.Cases(data, root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return cases, nil
}
