// Package internal contains the supporting packages for the expect library
// and the expectctl CLI.
//
// # Package Organization
//
//   - config: expectctl configuration loaded with Viper, and its validation
//   - errors: ExpectError, error codes and "did you mean" suggestions
//   - logging: slog-based structured logger with a swappable default
//   - scenario: YAML scenario files, the scenario runner and message templates
//   - strbuilder: token-aware string builder used by message rendering
//   - testutils: shared fixtures and failure helpers for tests
//   - version: build information for expectctl
//   - watcher: fsnotify file watching with debouncing for check --watch
package internal
