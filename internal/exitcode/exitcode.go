// Package exitcode defines exit codes for the CLI.
//
// Task-list outcomes such as an empty list, an out-of-range index or a task
// already in the requested state are reported to the user and exit with
// Success. Only usage and storage problems produce a non-zero code.
package exitcode

const (
	// Success indicates successful completion, including reported task-list
	// input errors.
	Success = 0

	// UserError indicates a usage error (unknown command or flag, missing or
	// non-numeric argument).
	UserError = 1

	// ConfigError indicates the stored config file could not be parsed.
	ConfigError = 2

	// StoreError indicates the config file could not be read or written.
	StoreError = 3
)
