package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/test/util"
)

type fixture struct {
	client    *ent.Client
	bus       *events.Bus
	publisher *events.Publisher
	tickets   *TicketService
	tasks     *TaskService
	agents    *AgentService
	events    *EventService
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(client, bus)
	return &fixture{
		client:    client,
		bus:       bus,
		publisher: publisher,
		tickets:   NewTicketService(client, publisher),
		tasks:     NewTaskService(client),
		agents:    NewAgentService(client, publisher, nil),
		events:    NewEventService(client),
	}
}

func (f *fixture) createTicket(t *testing.T) *ent.Ticket {
	row, err := f.tickets.Create(context.Background(), CreateTicketInput{
		Title:   "ticket " + uuid.New().String()[:8],
		PhaseID: "implementation",
	})
	require.NoError(t, err)
	return row
}
