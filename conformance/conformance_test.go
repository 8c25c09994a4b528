package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	tests, err := LoadAllTests()
	require.NoError(t, err, "failed to load suites")
	require.NotEmpty(t, tests, "no tests loaded")

	runner := NewRunner()
	results := runner.RunAll(tests)

	// Group results by file for organized output
	fileGroups := make(map[string][]TestResult)
	for _, result := range results {
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	for file, fileResults := range fileGroups {
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				result := result
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					}
					if !result.Passed {
						assert.Fail(t, "conformance case failed",
							"%s: %v\nsource:\n%s",
							result.Test.Test.Name, result.Error, result.Test.Test.Source)
					}
				})
			}
		})
	}

	stats := ComputeStats(results)
	t.Logf("conformance: %s", FormatStats(stats))
	assert.Zero(t, stats.Failed, "failing conformance cases")
}

func TestSuitesAreWellFormed(t *testing.T) {
	tests, err := LoadAllTests()
	require.NoError(t, err)

	files := make(map[string]bool)
	for _, test := range tests {
		files[test.File] = true

		assert.NotEmpty(t, test.Test.Name, "unnamed test in %s", test.File)
		assert.NotEmpty(t, test.Test.Source, "test %s in %s has no source", test.Test.Name, test.File)
		assert.True(t, test.Test.HasExpectation(),
			"test %s in %s asserts nothing", test.Test.Name, test.File)
	}

	t.Logf("loaded %d cases from %d files", len(tests), len(files))
}

func TestRunnerReportsFailures(t *testing.T) {
	runner := NewRunner()

	// A wrong value expectation must fail, not error out
	res := runner.Run(LoadedTest{
		File: "inline",
		Test: TestCase{
			Name:   "wrong value",
			Source: "1 + 1;",
			Expect: Expectation{Value: 3},
		},
	})
	assert.False(t, res.Passed)
	assert.Error(t, res.Error)

	// A wrong error message must fail
	res = runner.Run(LoadedTest{
		File: "inline",
		Test: TestCase{
			Name:   "wrong error",
			Source: "1 / 0;",
			Expect: Expectation{Error: "Everything is fine."},
		},
	})
	assert.False(t, res.Passed)

	// A matching expectation passes
	res = runner.Run(LoadedTest{
		File: "inline",
		Test: TestCase{
			Name:   "right value",
			Source: "1 + 1;",
			Expect: Expectation{Value: 2, Type: "INT"},
		},
	})
	assert.True(t, res.Passed, "unexpected failure: %v", res.Error)
}

func TestRunnerIsolatesPrograms(t *testing.T) {
	runner := NewRunner()

	res := runner.Run(LoadedTest{
		File: "inline",
		Test: TestCase{
			Name:   "defines global",
			Source: "var shared = 1; shared;",
			Expect: Expectation{Value: 1},
		},
	})
	require.True(t, res.Passed, "setup case failed: %v", res.Error)

	// The next program must not see the previous program's globals
	res = runner.Run(LoadedTest{
		File: "inline",
		Test: TestCase{
			Name:   "does not see it",
			Source: "shared;",
			Expect: Expectation{Error: "Undefined variable 'shared'."},
		},
	})
	assert.True(t, res.Passed, "isolation case failed: %v", res.Error)
}
