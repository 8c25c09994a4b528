package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the YAML suites, relative to this
// package
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks the suite directory and flattens every case into
// a LoadedTest tagged with its file name
func LoadAllTests() ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.Walk(TestPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		suite, err := loadSuite(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		rel, err := filepath.Rel(TestPath, path)
		if err != nil {
			rel = path
		}
		for _, test := range suite.Tests {
			loaded = append(loaded, LoadedTest{
				File:  rel,
				Suite: suite,
				Test:  test,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadSuite reads and unmarshals a single YAML suite
func loadSuite(path string) (TestSuite, error) {
	var suite TestSuite

	data, err := os.ReadFile(path)
	if err != nil {
		return suite, err
	}
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return suite, fmt.Errorf("yaml: %w", err)
	}
	if suite.Name == "" {
		return suite, fmt.Errorf("suite has no name")
	}
	return suite, nil
}
