package commands

import (
	"context"
	"io"

	"go.trai.ch/zerr"

	"tareas/internal/output"
	"tareas/internal/task"
)

// AddTaskCmd appends a task to a shared list.
type AddTaskCmd struct {
	list *task.List
	item task.Item
}

// NewAddTask builds a command that appends item to list.
func NewAddTask(list *task.List, item task.Item) *AddTaskCmd {
	return &AddTaskCmd{list: list, item: item}
}

func (c *AddTaskCmd) Name() string    { return "add" }
func (c *AddTaskCmd) Subject() string { return c.item.Title() }

// Execute appends the task, then prints "Tarea agregada: {TITLE}".
func (c *AddTaskCmd) Execute(ctx context.Context, out io.Writer) error {
	c.list.Append(c.item)

	if err := output.FormatAdded(out, c.item.Title()); err != nil {
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "command", c.Name())
	}
	return nil
}
