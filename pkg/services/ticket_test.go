package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent/ticket"
	"github.com/omoi-os/omoios/pkg/events"
)

func TestCreateTicketPublishesEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.bus.Subscribe("test", events.EventTicketCreated)

	project := "proj-1"
	estimate := "m"
	row, err := f.tickets.Create(ctx, CreateTicketInput{
		Title:       "Add billing export",
		Description: "CSV export of invoices",
		PhaseID:     "design",
		Priority:    "high",
		ProjectID:   &project,
		Estimate:    &estimate,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusPending, row.Status)
	assert.Equal(t, ticket.PriorityHigh, row.Priority)

	select {
	case evt := <-sub.C():
		assert.Equal(t, row.ID, evt.EntityID)
		assert.Equal(t, "design", evt.Payload["phase_id"])
	case <-time.After(time.Second):
		t.Fatal("expected TICKET_CREATED")
	}
}

func TestCreateTicketValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.tickets.Create(ctx, CreateTicketInput{PhaseID: "design"})
	assert.True(t, IsValidationError(err))

	_, err = f.tickets.Create(ctx, CreateTicketInput{Title: "x"})
	assert.True(t, IsValidationError(err))

	_, err = f.tickets.Create(ctx, CreateTicketInput{Title: "x", PhaseID: "design", Priority: "urgent"})
	assert.True(t, IsValidationError(err))
}

func TestUpdateTicketTracksChangedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	row := f.createTicket(t)
	sub := f.bus.Subscribe("test", events.EventTicketUpdated)

	status := "in_progress"
	title := "renamed"
	updated, err := f.tickets.Update(ctx, row.ID, UpdateTicketInput{Status: &status, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, updated.Status)
	assert.Equal(t, "renamed", updated.Title)

	select {
	case evt := <-sub.C():
		assert.ElementsMatch(t, []any{"title", "status"}, evt.Payload["changed_fields"])
	case <-time.After(time.Second):
		t.Fatal("expected TICKET_UPDATED")
	}

	_, err = f.tickets.Update(ctx, row.ID, UpdateTicketInput{})
	assert.True(t, IsValidationError(err))

	_, err = f.tickets.Update(ctx, "missing", UpdateTicketInput{Title: &title})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListTicketsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createTicket(t)
	f.createTicket(t)
	status := "done"
	_, err := f.tickets.Update(ctx, a.ID, UpdateTicketInput{Status: &status})
	require.NoError(t, err)

	done, err := f.tickets.List(ctx, TicketFilters{Status: "done"})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, a.ID, done[0].ID)

	all, err := f.tickets.List(ctx, TicketFilters{PhaseID: "implementation"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
