package commands

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"tareas/internal/logger"
)

// Record describes one successful command execution.
type Record struct {
	ID      uuid.UUID
	Command string
	Subject string
}

// Invoker executes commands in order and keeps their history.
type Invoker struct {
	mu      sync.RWMutex
	history []Record
	log     *slog.Logger
}

// NewInvoker creates an invoker. A nil logger discards diagnostics.
func NewInvoker(log *slog.Logger) *Invoker {
	if log == nil {
		log = logger.Discard()
	}
	return &Invoker{log: log}
}

// Run executes cmds in the given order, stopping at the first error.
// The context is checked before each command.
func (i *Invoker) Run(ctx context.Context, out io.Writer, cmds ...Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, ErrInterrupted.Error()), "command", cmd.Name())
		}

		id := uuid.New()
		if err := cmd.Execute(ctx, out); err != nil {
			return zerr.With(err, "invocation", id.String())
		}

		i.record(Record{ID: id, Command: cmd.Name(), Subject: cmd.Subject()})
		i.log.Debug("command executed",
			"command", cmd.Name(),
			"invocation", id.String(),
			"subject", cmd.Subject(),
		)
	}
	return nil
}

func (i *Invoker) record(r Record) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.history = append(i.history, r)
}

// History returns executed commands in execution order.
func (i *Invoker) History() []Record {
	i.mu.RLock()
	defer i.mu.RUnlock()

	result := make([]Record, len(i.history))
	copy(result, i.history)
	return result
}
