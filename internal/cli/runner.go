// Package cli wires the task factory, decorators and commands into the
// program's fixed trace.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.trai.ch/zerr"

	"tareas/internal/commands"
	"tareas/internal/config"
	"tareas/internal/exitcode"
	"tareas/internal/logger"
	"tareas/internal/output"
	"tareas/internal/task"
)

// ErrListOutput is returned when the final task list cannot be written.
var ErrListOutput = zerr.New("failed to write task list")

// Runner executes the trace described by a Config.
type Runner struct {
	cfg     *config.Config
	factory task.Factory
	log     *slog.Logger
}

// NewRunner creates a runner. A nil factory falls back to task.SimpleFactory
// and a nil logger discards diagnostics.
func NewRunner(cfg *config.Config, factory task.Factory, log *slog.Logger) *Runner {
	if factory == nil {
		factory = task.NewSimpleFactory()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Runner{
		cfg:     cfg,
		factory: factory,
		log:     log,
	}
}

// Run executes the trace, writing confirmations and the final list to out.
// Returns the exit code.
func (r *Runner) Run(ctx context.Context, out, errOut io.Writer) int {
	list, err := r.Execute(ctx, out)
	if err != nil {
		r.log.Error("run failed", logger.Err(err))
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.Failure
	}

	r.log.Debug("run finished", "tasks", list.Len())
	return exitcode.Success
}

// Execute builds the tasks and commands, runs them and prints the list.
// Adds run in seed order, then completions in seed order.
func (r *Runner) Execute(ctx context.Context, out io.Writer) (*task.List, error) {
	list := task.NewList()

	var adds, completes []commands.Command
	for _, seed := range r.cfg.Seeds {
		created := r.factory.CreateTask(seed.Title, seed.Description)

		item := created
		if seed.Urgent {
			item = task.NewUrgent(created)
		}

		adds = append(adds, commands.NewAddTask(list, item))
		if seed.Complete {
			completes = append(completes, commands.NewCompleteTask(created))
		}
	}

	inv := commands.NewInvoker(r.log)
	if err := inv.Run(ctx, out, append(adds, completes...)...); err != nil {
		return list, err
	}

	if err := output.FormatList(out, list); err != nil {
		return list, zerr.Wrap(err, ErrListOutput.Error())
	}
	return list, nil
}
