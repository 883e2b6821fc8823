// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"

	"tareas/internal/task"
)

const (
	// ListHeader is the title line printed before the task list.
	ListHeader = "--- Lista de Tareas ---"
)

// FormatAdded writes the confirmation line for an added task.
// Format: "Tarea agregada: {TITLE}\n"
func FormatAdded(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "Tarea agregada: %s\n", title)
	return err
}

// FormatCompleted writes the confirmation line for a completed task.
// Format: "Tarea completada: {TITLE}\n"
func FormatCompleted(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "Tarea completada: %s\n", title)
	return err
}

// FormatListHeader writes a blank separator line followed by ListHeader.
func FormatListHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n%s\n", ListHeader)
	return err
}

// FormatItem writes one rendered item on its own line.
func FormatItem(w io.Writer, it task.Item) error {
	_, err := fmt.Fprintln(w, it.Render())
	return err
}

// FormatList writes the header and then every item in insertion order.
func FormatList(w io.Writer, l *task.List) error {
	if err := FormatListHeader(w); err != nil {
		return err
	}
	for _, it := range l.Items() {
		if err := FormatItem(w, it); err != nil {
			return err
		}
	}
	return nil
}
