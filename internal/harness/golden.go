package harness

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Transcript renders a result as the text stored in golden files:
//
//	# scenario_name
//	$ days list --today
//	2024-03-10: standup (work) - today
//	[exit 0]
//	--- events file
//	date,category,description
//	2024-03-10,work,standup
//
// Stderr is left out; it carries log timestamps.
func Transcript(name string, result *Result) []byte {
	var b strings.Builder
	b.WriteString("# " + name + "\n")
	for _, step := range result.Steps {
		b.WriteString("$ days " + joinArgs(step.Args) + "\n")
		b.WriteString(step.Stdout)
		b.WriteString("[exit " + strconv.Itoa(step.Exit) + "]\n")
	}
	if result.File == nil {
		b.WriteString("--- no events file\n")
	} else {
		b.WriteString("--- events file\n")
		b.WriteString(*result.File)
	}
	return []byte(b.String())
}

// joinArgs quotes arguments that would not survive a shell round trip.
func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'\\") {
			quoted[i] = strconv.Quote(a)
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}

// RunWithGolden executes a scenario and compares its transcript against a
// golden file. The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can also check Pass and Errors.
// Test failure (via goldie) occurs if the transcript doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	// Run the scenario
	result, err := Run(context.Background(), scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares the given result's transcript against a golden file.
// This is useful when you've already run a scenario and want to compare
// the result against a golden file without re-running.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	// Compare with golden file using goldie
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, Transcript(scenarioName, result))
}
