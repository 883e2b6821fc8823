// Package exitcode defines exit codes for the program.
package exitcode

const (
	// Success indicates the trace ran to completion.
	Success = 0

	// Failure indicates output could not be written or the run was interrupted.
	Failure = 1
)
