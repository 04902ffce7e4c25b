package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/days/internal/event"
)

// Scenario defines an end-to-end CLI scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Today is the fixed current date (YYYY-MM-DD).
	// If empty, testutil.DefaultToday is used.
	Today string `yaml:"today,omitempty"`

	// Config is written to config.yaml in the data directory when set.
	Config string `yaml:"config,omitempty"`

	// Seed is the initial content of the events file.
	// If nil, the scenario starts without an events file.
	Seed *string `yaml:"seed,omitempty"`

	// Steps are CLI invocations run in order against the same directory.
	Steps []Step `yaml:"steps"`

	// Assertions validate outputs and the final events file.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one CLI invocation.
type Step struct {
	// Args are the command-line arguments after "days". The harness adds
	// --dir itself.
	Args []string `yaml:"args"`

	// Exit is the expected exit code.
	Exit int `yaml:"exit"`
}

// Assertion validates the outcome of a scenario.
type Assertion struct {
	// Type specifies the assertion type:
	// - "file_equals": Events file content equals Content
	// - "file_unchanged": Events file content equals the seed
	// - "file_missing": No events file exists
	// - "stdout_contains": Stdout of Step contains Text
	// - "stderr_contains": Stderr of Step contains Text
	Type string `yaml:"type"`

	// Content is the expected file content (used by file_equals).
	Content string `yaml:"content,omitempty"`

	// Step is the step index (used by stdout_contains, stderr_contains).
	Step int `yaml:"step,omitempty"`

	// Text is the expected substring (used by stdout_contains, stderr_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertFileEquals     = "file_equals"
	AssertFileUnchanged  = "file_unchanged"
	AssertFileMissing    = "file_missing"
	AssertStdoutContains = "stdout_contains"
	AssertStderrContains = "stderr_contains"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	names := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, ok := names[s.Name]; ok {
			return nil, fmt.Errorf("%s: scenario name %q already used by %s", filepath.Base(path), s.Name, prev)
		}
		names[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Today != "" {
		if _, err := event.ParseDate(s.Today); err != nil {
			return fmt.Errorf("today: %w", err)
		}
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	// Validate steps
	for i, step := range s.Steps {
		if len(step.Args) == 0 {
			return fmt.Errorf("steps[%d]: args is required", i)
		}
	}

	// Validate assertions
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, len(s.Steps)); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, steps int) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertFileEquals, AssertFileUnchanged, AssertFileMissing:
		return nil
	case AssertStdoutContains, AssertStderrContains:
		if a.Step < 0 || a.Step >= steps {
			return fmt.Errorf("assertions[%d]: step %d out of range (scenario has %d steps)", index, a.Step, steps)
		}
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
		return nil
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
}
