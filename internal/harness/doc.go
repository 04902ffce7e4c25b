// Package harness runs end-to-end CLI scenarios for days.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	today: "2024-03-10"        # optional, defaults to testutil.DefaultToday
//	config: |                  # optional config.yaml content
//	  timezone: UTC
//	seed: |                    # optional initial events file
//	  date,category,description
//	  2024-03-10,work,standup
//	steps:
//	  - args: [list, --today]
//	    exit: 0
//	  - args: [delete, --all]
//	assertions:
//	  - type: stdout_contains
//	    step: 0
//	    text: standup
//	  - type: file_equals
//	    content: |
//	      date,category,description
//
// # Assertion Types
//
//   - file_equals: The events file has exactly the given content
//   - file_unchanged: The events file still holds the seed
//   - file_missing: No events file exists
//   - stdout_contains: A step's stdout contains text
//   - stderr_contains: A step's stderr contains text
//
// # Deterministic Testing
//
// Every scenario runs in a fresh temp data directory, through cli.Run,
// with today fixed. The transcript of commands, stdout, exit codes and the
// final events file is compared against testdata/golden/{name}.golden.
// Stderr is not part of the transcript because log lines carry timestamps.
package harness
