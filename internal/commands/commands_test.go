package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tareas/internal/commands"
	"tareas/internal/task"
	"tareas/internal/testutil"
)

// execute is a helper to run a single command against a buffer.
func execute(t *testing.T, cmd commands.Command) string {
	t.Helper()

	var out bytes.Buffer
	require.NoError(t, cmd.Execute(context.Background(), &out))
	return out.String()
}

func TestAddTask_AppendsOne(t *testing.T) {
	list := task.NewList()
	first := task.New("A", "a")
	list.Append(first)

	second := task.New("B", "b")
	stdout := execute(t, commands.NewAddTask(list, second))

	assert.Equal(t, "Tarea agregada: B\n", stdout)
	items := list.Items()
	require.Len(t, items, 2)
	assert.Same(t, first, items[0])
	assert.Same(t, second, items[1])
}

func TestAddTask_Decorated(t *testing.T) {
	list := task.NewList()
	urgent := task.NewUrgent(task.New("Subir tarea", "Subir el proyecto a Git"))

	stdout := execute(t, commands.NewAddTask(list, urgent))

	assert.Equal(t, "Tarea agregada: Subir tarea\n", stdout)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, "[URGENTE] [ ] Subir tarea: Subir el proyecto a Git", list.Items()[0].Render())
}

func TestAddTask_Twice(t *testing.T) {
	list := task.NewList()
	tk := task.New("A", "a")
	cmd := commands.NewAddTask(list, tk)

	execute(t, cmd)
	execute(t, cmd)

	assert.Equal(t, 2, list.Len(), "duplicates are permitted")
}

func TestAddTask_WriteError(t *testing.T) {
	list := task.NewList()
	cmd := commands.NewAddTask(list, task.New("A", "a"))

	err := cmd.Execute(context.Background(), &testutil.FailingWriter{})

	require.ErrorIs(t, err, testutil.ErrWrite)
	assert.Equal(t, 1, list.Len(), "the task is appended before the confirmation is written")
}

func TestCompleteTask_OnlyTarget(t *testing.T) {
	list := task.NewList()
	target := task.New("A", "a")
	other := task.New("B", "b")
	list.Append(target)
	list.Append(other)

	stdout := execute(t, commands.NewCompleteTask(target))

	assert.Equal(t, "Tarea completada: A\n", stdout)
	assert.True(t, target.IsCompleted())
	assert.False(t, other.IsCompleted())
	assert.Equal(t, 2, list.Len())
}

func TestCompleteTask_Idempotent(t *testing.T) {
	tk := task.New("A", "a")
	cmd := commands.NewCompleteTask(tk)

	first := execute(t, cmd)
	second := execute(t, cmd)

	assert.Equal(t, first, second, "second execution still logs")
	assert.True(t, tk.IsCompleted())
}

func TestCompleteTask_ThroughDecorator(t *testing.T) {
	inner := task.New("A", "a")

	execute(t, commands.NewCompleteTask(task.NewUrgent(inner)))

	assert.True(t, inner.IsCompleted())
}

func TestCompleteTask_WriteError(t *testing.T) {
	tk := task.New("A", "a")

	err := commands.NewCompleteTask(tk).Execute(context.Background(), &testutil.FailingWriter{})

	require.ErrorIs(t, err, testutil.ErrWrite)
	assert.True(t, tk.IsCompleted())
}

func TestCommand_Names(t *testing.T) {
	tk := task.New("A", "a")

	add := commands.NewAddTask(task.NewList(), tk)
	assert.Equal(t, "add", add.Name())
	assert.Equal(t, "A", add.Subject())

	done := commands.NewCompleteTask(tk)
	assert.Equal(t, "complete", done.Name())
	assert.Equal(t, "A", done.Subject())
}
