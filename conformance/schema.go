package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite. Source holds a
// complete program; the expectation checks its last value, its printed
// output, or the runtime error it must raise.
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Source      string      `yaml:"source"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test. The fields
// compose: a test may pin both the final value and the printed output.
type Expectation struct {
	Value  interface{} `yaml:"value,omitempty"`  // last statement's value
	Output string      `yaml:"output,omitempty"` // exact stdout
	Type   string      `yaml:"type,omitempty"`   // INT, STR, OBJ, ...
	Error  string      `yaml:"error,omitempty"`  // exact error message
	Line   int         `yaml:"line,omitempty"`   // error line, when it matters
}

// HasExpectation reports whether the case asserts anything at all
func (tc *TestCase) HasExpectation() bool {
	e := tc.Expect
	return e.Value != nil || e.Output != "" || e.Type != "" || e.Error != ""
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
