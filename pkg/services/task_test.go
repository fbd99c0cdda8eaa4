package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/models"
)

func TestSubmitTaskRequiresParentTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: "missing", TaskType: "build"})
	assert.True(t, errors.Is(err, ErrNotFound))

	tk := f.createTicket(t)
	row, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "build"})
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, row.Status)
	assert.Equal(t, task.PriorityMedium, row.Priority)
}

func TestSubmitTaskValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk := f.createTicket(t)

	_, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID})
	assert.True(t, IsValidationError(err))

	_, err = f.tasks.Submit(ctx, SubmitTaskInput{
		TicketID: tk.ID, TaskType: "build",
		RequiredResources: []models.ResourceRef{{ResourceType: "repo"}},
	})
	assert.True(t, IsValidationError(err))

	_, err = f.tasks.Submit(ctx, SubmitTaskInput{
		TicketID: tk.ID, TaskType: "build",
		RequiredResources: []models.ResourceRef{{ResourceType: "repo", ResourceID: "r1", Mode: "upgradable"}},
	})
	assert.True(t, IsValidationError(err))
}

func TestSubmitTaskRejectsDependencyCycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk := f.createTicket(t)

	a, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "a"})
	require.NoError(t, err)
	b, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "b", DependsOn: []string{a.ID}})
	require.NoError(t, err)

	// Close a cycle in the stored graph, then submit a task depending
	// into it.
	require.NoError(t, f.client.Task.UpdateOneID(a.ID).SetDependsOn([]string{b.ID}).Exec(ctx))

	_, err = f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "c", DependsOn: []string{a.ID}})
	assert.True(t, errors.Is(err, ErrDependencyCycle))

	// Duplicates are rejected up front.
	_, err = f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "d", DependsOn: []string{b.ID, b.ID}})
	assert.True(t, IsValidationError(err))

	// Dependencies on not-yet-known IDs are accepted; the scheduler
	// gates on them.
	_, err = f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "e", DependsOn: []string{"future-task"}})
	assert.NoError(t, err)
}

func TestCancelTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk := f.createTicket(t)

	pending, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "build"})
	require.NoError(t, err)

	cancelled, err := f.tasks.Cancel(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)

	// Terminal and in-flight states reject.
	_, err = f.tasks.Cancel(ctx, pending.ID)
	assert.True(t, errors.Is(err, ErrNotCancellable))

	running, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "build"})
	require.NoError(t, err)
	require.NoError(t, f.client.Task.UpdateOneID(running.ID).SetStatus(task.StatusRunning).Exec(ctx))
	_, err = f.tasks.Cancel(ctx, running.ID)
	assert.True(t, errors.Is(err, ErrNotCancellable))

	_, err = f.tasks.Cancel(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDependenciesDerivesBlocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk := f.createTicket(t)

	a, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "a"})
	require.NoError(t, err)
	b, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "b", DependsOn: []string{a.ID}})
	require.NoError(t, err)
	c, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "c", DependsOn: []string{a.ID, b.ID}})
	require.NoError(t, err)

	deps, err := f.tasks.Dependencies(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, deps.DependsOn)
	assert.ElementsMatch(t, []string{b.ID, c.ID}, deps.Blocks)

	deps, err = f.tasks.Dependencies(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, deps.DependsOn)
	assert.Empty(t, deps.Blocks)
}

func TestListTasksFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk := f.createTicket(t)

	a, err := f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "a"})
	require.NoError(t, err)
	_, err = f.tasks.Submit(ctx, SubmitTaskInput{TicketID: tk.ID, TaskType: "b"})
	require.NoError(t, err)
	require.NoError(t, f.client.Task.UpdateOneID(a.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	completed, err := f.tasks.List(ctx, TaskFilters{TicketID: tk.ID, Status: "completed"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, a.ID, completed[0].ID)

	_, err = f.tasks.List(ctx, TaskFilters{Status: "bogus"})
	assert.True(t, IsValidationError(err))
}
