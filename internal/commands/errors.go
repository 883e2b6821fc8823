package commands

import "go.trai.ch/zerr"

var (
	// ErrWriteFailed is returned when a confirmation line cannot be written.
	ErrWriteFailed = zerr.New("failed to write confirmation")

	// ErrInterrupted is returned when the context is done before a command runs.
	ErrInterrupted = zerr.New("command run interrupted")
)
