// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"
)

// Command is a single deferred mutation of the task list or a task.
// Operands are captured when the command is built; Execute performs
// the mutation once and writes a confirmation line to out.
type Command interface {
	// Name returns the command name used in diagnostics.
	Name() string

	// Subject returns the title of the task the command acts on.
	Subject() string

	// Execute performs the mutation and writes its confirmation.
	Execute(ctx context.Context, out io.Writer) error
}
