package locks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/test/util"
)

func newTestManager(t *testing.T) (*Manager, *events.Bus) {
	client, _ := util.SetupTestDatabase(t)
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(client, bus)
	cfg := &config.LockConfig{DefaultTTL: 0, SweepInterval: time.Minute}
	return NewManager(client, publisher, cfg), bus
}

func TestAcquireExclusiveConflict(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	first, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "src/main.go",
		TaskID:       "task-1",
		AgentID:      "agent-1",
		Mode:         resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	// Second exclusive on the same resource must conflict, not error.
	second, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "src/main.go",
		TaskID:       "task-2",
		AgentID:      "agent-2",
		Mode:         resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	assert.Nil(t, second)

	// A different resource is unaffected.
	other, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "src/other.go",
		TaskID:       "task-2",
		AgentID:      "agent-2",
	})
	require.NoError(t, err)
	assert.NotNil(t, other)
}

func TestSharedLocksCoexist(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	for i, taskID := range []string{"task-1", "task-2", "task-3"} {
		lock, err := mgr.Acquire(ctx, AcquireRequest{
			ResourceType: "dataset",
			ResourceID:   "training-set",
			TaskID:       taskID,
			AgentID:      "agent-1",
			Mode:         resourcelock.LockModeShared,
		})
		require.NoError(t, err, "shared acquire %d", i)
		require.NotNil(t, lock, "shared acquire %d", i)
	}

	// Exclusive must wait for all shared holders.
	excl, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "dataset",
		ResourceID:   "training-set",
		TaskID:       "task-4",
		AgentID:      "agent-2",
		Mode:         resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	assert.Nil(t, excl)

	// And shared must wait for an exclusive holder.
	exclOther, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "dataset",
		ResourceID:   "eval-set",
		TaskID:       "task-4",
		AgentID:      "agent-2",
		Mode:         resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	require.NotNil(t, exclOther)

	shared, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "dataset",
		ResourceID:   "eval-set",
		TaskID:       "task-5",
		AgentID:      "agent-3",
		Mode:         resourcelock.LockModeShared,
	})
	require.NoError(t, err)
	assert.Nil(t, shared)
}

func TestReleaseIsIdempotent(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	lock, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "README.md",
		TaskID:       "task-1",
		AgentID:      "agent-1",
	})
	require.NoError(t, err)
	require.NotNil(t, lock)

	ok, err := mgr.Release(ctx, lock.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Releasing again, and releasing an unknown ID, both succeed.
	ok, err = mgr.Release(ctx, lock.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mgr.Release(ctx, "no-such-lock")
	require.NoError(t, err)
	assert.True(t, ok)

	locked, err := mgr.IsLocked(ctx, "file", "README.md")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestReleaseTaskLocks(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	for _, res := range []string{"a.go", "b.go", "c.go"} {
		lock, err := mgr.Acquire(ctx, AcquireRequest{
			ResourceType: "file",
			ResourceID:   res,
			TaskID:       "task-1",
			AgentID:      "agent-1",
		})
		require.NoError(t, err)
		require.NotNil(t, lock)
	}
	other, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "d.go",
		TaskID:       "task-2",
		AgentID:      "agent-2",
	})
	require.NoError(t, err)
	require.NotNil(t, other)

	released, err := mgr.ReleaseTaskLocks(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, 3, released)

	// The other task's lock survives.
	active, err := mgr.ListActive(ctx, Filters{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "task-2", active[0].LockedByTaskID)
}

func TestCleanupExpiredEmitsEvents(t *testing.T) {
	mgr, bus := newTestManager(t)
	ctx := context.Background()

	sub := bus.Subscribe("test", "lock.expired")

	lock, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "x.go",
		TaskID:       "task-1",
		AgentID:      "agent-1",
		TTL:          time.Millisecond,
	})
	require.NoError(t, err)
	require.NotNil(t, lock)

	time.Sleep(10 * time.Millisecond)

	swept, err := mgr.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	select {
	case evt := <-sub.C():
		assert.Equal(t, events.EventLockExpired, evt.Type)
		assert.Equal(t, lock.ID, evt.EntityID)
	case <-time.After(time.Second):
		t.Fatal("expected lock.expired event")
	}

	// Idempotent: a second sweep finds nothing.
	swept, err = mgr.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, swept)

	locked, err := mgr.IsLocked(ctx, "file", "x.go")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestExpiredLockDoesNotBlockAcquire(t *testing.T) {
	mgr, bus := newTestManager(t)
	ctx := context.Background()

	sub := bus.Subscribe("test", events.EventLockExpired)

	stale, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "y.go",
		TaskID:       "task-1",
		AgentID:      "agent-1",
		TTL:          time.Millisecond,
	})
	require.NoError(t, err)
	require.NotNil(t, stale)

	time.Sleep(10 * time.Millisecond)

	// TTL has lapsed but the sweeper has not run yet; a new acquire wins
	// and retires the stale lock itself.
	fresh, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "y.go",
		TaskID:       "task-2",
		AgentID:      "agent-2",
	})
	require.NoError(t, err)
	assert.NotNil(t, fresh)

	select {
	case evt := <-sub.C():
		assert.Equal(t, stale.ID, evt.EntityID)
	case <-time.After(time.Second):
		t.Fatal("expected lock.expired event")
	}
}

func TestExclusiveLockUniqueInDatabase(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	mgr := NewManager(client, events.NewPublisher(client, bus), &config.LockConfig{SweepInterval: time.Minute})
	ctx := context.Background()

	held, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "src/main.go",
		TaskID:       "task-1",
		AgentID:      "agent-1",
		Mode:         resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	require.NotNil(t, held)

	// A write that sidesteps the manager's serialized acquire path still
	// cannot produce a second active exclusive lock on the resource.
	_, err = client.ResourceLock.Create().
		SetID(uuid.New().String()).
		SetResourceType("file").
		SetResourceID("src/main.go").
		SetLockedByTaskID("task-2").
		SetLockedByAgentID("agent-2").
		SetLockMode(resourcelock.LockModeExclusive).
		SetAcquiredAt(time.Now()).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Releasing the holder frees the slot.
	ok, err := mgr.Release(ctx, held.ID)
	require.NoError(t, err)
	require.True(t, ok)

	again, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file",
		ResourceID:   "src/main.go",
		TaskID:       "task-2",
		AgentID:      "agent-2",
		Mode:         resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	assert.NotNil(t, again)
}

func TestListActiveFilters(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "file", ResourceID: "a.go", TaskID: "task-1", AgentID: "agent-1",
		Mode: resourcelock.LockModeExclusive,
	})
	require.NoError(t, err)
	_, err = mgr.Acquire(ctx, AcquireRequest{
		ResourceType: "dataset", ResourceID: "d1", TaskID: "task-2", AgentID: "agent-1",
		Mode: resourcelock.LockModeShared,
	})
	require.NoError(t, err)

	byType, err := mgr.ListActive(ctx, Filters{ResourceType: "file"})
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	byAgent, err := mgr.ListActive(ctx, Filters{AgentID: "agent-1"})
	require.NoError(t, err)
	assert.Len(t, byAgent, 2)

	byMode, err := mgr.ListActive(ctx, Filters{Mode: resourcelock.LockModeShared})
	require.NoError(t, err)
	require.Len(t, byMode, 1)
	assert.Equal(t, "task-2", byMode[0].LockedByTaskID)
}
