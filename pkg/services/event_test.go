package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventsSinceCursor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createTicket(t)
	f.createTicket(t)
	f.createTicket(t)

	all, err := f.events.GetEventsSince(ctx, 0, EventFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].EntityID)

	// Resume from a cursor mid-stream.
	tail, err := f.events.GetEventsSince(ctx, all[0].ID, EventFilters{})
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Greater(t, tail[0].ID, all[0].ID)

	// Filtered and limited.
	limited, err := f.events.GetEventsSince(ctx, 0, EventFilters{EventType: "TICKET_CREATED", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := f.events.GetEventsSince(ctx, 0, EventFilters{EntityType: "lock"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
