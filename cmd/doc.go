// Package cmd provides the command-line interface for expectctl.
//
// This package implements the CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - methods: List the registered checks, negation words and no-op words
//   - render: Render message templates described in YAML
//   - check: Run YAML assertion scenarios, optionally re-running on change
//   - version: Show build information
//
// # Command Examples
//
//	// List checks as JSON
//	expectctl methods --kind method -o json
//
//	// Preview a message template, failing and negated
//	expectctl render messages.yml --both
//
//	// Run scenarios and keep watching
//	expectctl check scenarios/ --watch
//
// # Output Formats
//
// Every command honors --output (text, json, yaml), which can also be set
// with output.format in .expectctl.yml or EXPECTCTL_OUTPUT_FORMAT.
package cmd
