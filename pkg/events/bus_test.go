package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()

	sub := bus.Subscribe("orderer", "")

	for i := 0; i < 5; i++ {
		bus.Publish(Event{Type: "TASK_ASSIGNED", EntityID: fmt.Sprintf("t-%d", i)})
	}

	for i := 0; i < 5; i++ {
		select {
		case evt := <-sub.C():
			assert.Equal(t, fmt.Sprintf("t-%d", i), evt.EntityID)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestBusPrefixFiltering(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()

	lockSub := bus.Subscribe("locks", "lock.")
	allSub := bus.Subscribe("all", "")

	bus.Publish(Event{Type: EventLockExpired, EntityID: "l-1"})
	bus.Publish(Event{Type: EventTaskAssigned, EntityID: "t-1"})

	select {
	case evt := <-lockSub.C():
		assert.Equal(t, EventLockExpired, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("lock subscriber received nothing")
	}

	// The lock subscriber must not see the task event.
	select {
	case evt := <-lockSub.C():
		t.Fatalf("unexpected event for lock subscriber: %s", evt.Type)
	default:
	}

	require.Equal(t, EventLockExpired, (<-allSub.C()).Type)
	require.Equal(t, EventTaskAssigned, (<-allSub.C()).Type)
}

func TestBusDropsOldestWhenFull(t *testing.T) {
	bus := NewBus(2)
	defer bus.Close()

	sub := bus.Subscribe("slow", "")

	// Capacity 2: the third publish evicts the first event.
	bus.Publish(Event{Type: "TASK_ASSIGNED", EntityID: "a"})
	bus.Publish(Event{Type: "TASK_ASSIGNED", EntityID: "b"})
	bus.Publish(Event{Type: "TASK_ASSIGNED", EntityID: "c"})

	assert.Equal(t, int64(1), sub.Dropped())
	assert.Equal(t, "b", (<-sub.C()).EntityID)
	assert.Equal(t, "c", (<-sub.C()).EntityID)
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	sub := bus.Subscribe("gone", "")
	bus.Unsubscribe("gone")

	_, ok := <-sub.C()
	assert.False(t, ok)

	// Publishing after unsubscribe must not panic.
	bus.Publish(Event{Type: "TASK_ASSIGNED"})
}

func TestBusCloseStopsDelivery(t *testing.T) {
	bus := NewBus(4)
	sub := bus.Subscribe("s", "")
	bus.Close()

	bus.Publish(Event{Type: "TASK_ASSIGNED"})

	_, ok := <-sub.C()
	assert.False(t, ok)
}
