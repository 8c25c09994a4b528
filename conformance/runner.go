package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AgustinCB/smoked/eval"
	"github.com/AgustinCB/smoked/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests. Every case is a complete program
// evaluated in a fresh interpreter, so suites cannot leak state into
// each other.
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	if strings.TrimSpace(test.Test.Source) == "" {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: "no source",
		}
	}

	var out bytes.Buffer
	evaluator := eval.NewEvaluator(&out)
	val, runErr := evaluator.EvalProgram(test.Test.Source)

	passed, err := r.checkExpectation(test.Test, val, out.String(), runErr)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks the program's outcome against the case's
// expectation. Value, output and type expectations compose; an error
// expectation stands alone.
func (r *Runner) checkExpectation(test TestCase, val types.Value, output string, runErr error) (bool, error) {
	expect := test.Expect

	if expect.Error != "" {
		if runErr == nil {
			return false, fmt.Errorf("expected error %q, got value: %v", expect.Error, val)
		}
		perr, ok := runErr.(*types.ProgramError)
		if !ok {
			return false, fmt.Errorf("expected runtime error %q, got: %v", expect.Error, runErr)
		}
		if perr.Message != expect.Error {
			return false, fmt.Errorf("expected error %q, got %q", expect.Error, perr.Message)
		}
		if expect.Line != 0 && perr.Loc.Line != expect.Line {
			return false, fmt.Errorf("expected error on line %d, got line %d", expect.Line, perr.Loc.Line)
		}
		return true, nil
	}

	if runErr != nil {
		return false, fmt.Errorf("unexpected error: %v", runErr)
	}

	checked := false

	if expect.Output != "" {
		if output != expect.Output {
			return false, fmt.Errorf("expected output %q, got %q", expect.Output, output)
		}
		checked = true
	}

	if expect.Value != nil {
		expectedVal, err := convertYAMLValue(expect.Value)
		if err != nil {
			return false, fmt.Errorf("failed to convert expected value: %w", err)
		}
		if val == nil {
			return false, fmt.Errorf("expected %v, got no value", expectedVal)
		}
		if !val.Equal(expectedVal) {
			return false, fmt.Errorf("expected %v, got %v", expectedVal, val)
		}
		checked = true
	}

	if expect.Type != "" {
		if val == nil {
			return false, fmt.Errorf("expected type %s, got no value", expect.Type)
		}
		if val.Type().String() != expect.Type {
			return false, fmt.Errorf("expected type %s, got %s", expect.Type, val.Type())
		}
		checked = true
	}

	if !checked {
		return false, fmt.Errorf("no expectation specified")
	}
	return true, nil
}

// convertYAMLValue converts a YAML value to an interpreter value
func convertYAMLValue(v interface{}) (types.Value, error) {
	switch val := v.(type) {
	case int:
		return types.NewInt(int64(val)), nil
	case int64:
		return types.NewInt(val), nil
	case float64:
		return types.NewFloat(float32(val)), nil
	case string:
		return types.NewStr(val), nil
	case bool:
		return types.NewBool(val), nil
	case []interface{}:
		elements := make([]types.Value, len(val))
		for i, elem := range val {
			converted, err := convertYAMLValue(elem)
			if err != nil {
				return nil, err
			}
			elements[i] = converted
		}
		return types.NewArray(elements), nil
	default:
		return nil, fmt.Errorf("unsupported YAML type: %T", v)
	}
}
