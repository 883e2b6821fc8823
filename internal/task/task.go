// Package task defines the task entity, its factory and its decorators.
package task

// Status markers shown at the start of a rendered task.
const (
	MarkerDone    = "[Hecho]"
	MarkerPending = "[ ]"
)

// Item is anything that renders and completes like a task.
// Task and every decorator implement it, so they are interchangeable.
type Item interface {
	// Render returns the human-readable status line.
	Render() string

	// MarkComplete sets the completion flag. It is one-way and idempotent.
	MarkComplete()

	// IsCompleted reports the completion flag.
	IsCompleted() bool

	// Title returns the task title.
	Title() string
}

// Task represents a single unit of work.
type Task struct {
	title       string
	description string
	completed   bool
}

// New creates an open task. Any strings are accepted, including empty ones.
func New(title, description string) *Task {
	return &Task{
		title:       title,
		description: description,
	}
}

// MarkComplete marks the task as done.
func (t *Task) MarkComplete() {
	t.completed = true
}

// IsCompleted reports whether the task is done.
func (t *Task) IsCompleted() bool {
	return t.completed
}

// Title returns the task title.
func (t *Task) Title() string {
	return t.title
}

// Description returns the task description.
func (t *Task) Description() string {
	return t.description
}

// Render formats the task as "{MARKER} {TITLE}: {DESCRIPTION}".
func (t *Task) Render() string {
	marker := MarkerPending
	if t.completed {
		marker = MarkerDone
	}
	return marker + " " + t.title + ": " + t.description
}

func (t *Task) String() string {
	return t.Render()
}
