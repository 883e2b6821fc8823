package commands

import (
	"context"
	"io"

	"go.trai.ch/zerr"

	"tareas/internal/output"
	"tareas/internal/task"
)

// CompleteTaskCmd marks a task as done.
// Executing it again prints the confirmation again; the task stays done.
type CompleteTaskCmd struct {
	item task.Item
}

// NewCompleteTask builds a command that completes item.
func NewCompleteTask(item task.Item) *CompleteTaskCmd {
	return &CompleteTaskCmd{item: item}
}

func (c *CompleteTaskCmd) Name() string    { return "complete" }
func (c *CompleteTaskCmd) Subject() string { return c.item.Title() }

// Execute marks the task done, then prints "Tarea completada: {TITLE}".
func (c *CompleteTaskCmd) Execute(ctx context.Context, out io.Writer) error {
	c.item.MarkComplete()

	if err := output.FormatCompleted(out, c.item.Title()); err != nil {
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "command", c.Name())
	}
	return nil
}
