package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	// Header with assertion type
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)

	// Expected vs Actual (most important info)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	return buf.String()
}

// assertFileEquals checks the final events file against want.
func assertFileEquals(result *Result, typ string, want *string) error {
	switch {
	case want == nil && result.File == nil:
		return nil
	case want == nil:
		return &AssertionError{Type: typ, Expected: "no events file", Actual: fmt.Sprintf("%q", *result.File)}
	case result.File == nil:
		return &AssertionError{Type: typ, Expected: fmt.Sprintf("%q", *want), Actual: "no events file"}
	case *result.File != *want:
		return &AssertionError{Type: typ, Expected: fmt.Sprintf("%q", *want), Actual: fmt.Sprintf("%q", *result.File)}
	}
	return nil
}

// assertOutputContains checks one step's stdout or stderr for a substring.
func assertOutputContains(result *Result, assertion Assertion) error {
	if assertion.Step >= len(result.Steps) {
		return fmt.Errorf("%s: step %d did not run", assertion.Type, assertion.Step)
	}
	step := result.Steps[assertion.Step]

	output := step.Stdout
	if assertion.Type == AssertStderrContains {
		output = step.Stderr
	}
	if !strings.Contains(output, assertion.Text) {
		return &AssertionError{
			Type:     assertion.Type,
			Expected: fmt.Sprintf("step %d %v output containing %q", assertion.Step, step.Args, assertion.Text),
			Actual:   fmt.Sprintf("%q", output),
		}
	}
	return nil
}

// EvaluateAssertions evaluates all of scenario's assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, scenario *Scenario) []string {
	var errors []string

	for i, assertion := range scenario.Assertions {
		var err error

		switch assertion.Type {
		case AssertFileEquals:
			err = assertFileEquals(result, assertion.Type, &assertion.Content)
		case AssertFileUnchanged:
			err = assertFileEquals(result, assertion.Type, scenario.Seed)
		case AssertFileMissing:
			err = assertFileEquals(result, assertion.Type, nil)
		case AssertStdoutContains, AssertStderrContains:
			err = assertOutputContains(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
