// Package locks implements the resource lock manager: exclusive/shared
// locks with optimistic versioning, TTL expiry, and non-blocking acquire.
package locks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
)

// Manager serializes access to named resources. Lock compatibility is
// enforced by the transactional acquire path: an exclusive request needs
// zero active locks on the resource, a shared request needs zero active
// exclusive locks. A partial unique index on active exclusive locks backs
// the exclusive half at the database level. Conflict is a nil result, not
// an error; callers reschedule on the next tick.
type Manager struct {
	client    *ent.Client
	publisher *events.Publisher
	cfg       *config.LockConfig
}

// AcquireRequest names the lock to take.
type AcquireRequest struct {
	ResourceType string
	ResourceID   string
	TaskID       string
	AgentID      string
	Mode         resourcelock.LockMode
	TTL          time.Duration // 0 → manager default (which may also be 0 = no expiry)
}

// Filters narrows ListActive results. Zero-valued fields match anything.
type Filters struct {
	ResourceType string
	TaskID       string
	AgentID      string
	Mode         resourcelock.LockMode
}

// NewManager creates a lock manager.
func NewManager(client *ent.Client, publisher *events.Publisher, cfg *config.LockConfig) *Manager {
	return &Manager{client: client, publisher: publisher, cfg: cfg}
}

// Acquire attempts to take a lock. Returns (nil, nil) on conflict.
func (m *Manager) Acquire(ctx context.Context, req AcquireRequest) (*ent.ResourceLock, error) {
	if req.Mode == "" {
		req.Mode = resourcelock.LockModeExclusive
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	lock, emit, err := m.acquireInTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	if lock == nil {
		// Conflict — roll back via the deferred Rollback.
		return nil, nil
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lock acquisition: %w", err)
	}
	emit()
	return lock, nil
}

// AcquireInTx is Acquire running inside the caller's transaction; the
// orchestrator uses it to take a task's whole lock set atomically with
// the assignment. The returned emit func must be called after commit.
// Conflict returns (nil, nil, nil).
func (m *Manager) AcquireInTx(ctx context.Context, tx *ent.Tx, req AcquireRequest) (*ent.ResourceLock, func(), error) {
	if req.Mode == "" {
		req.Mode = resourcelock.LockModeExclusive
	}
	return m.acquireInTx(ctx, tx, req)
}

func (m *Manager) acquireInTx(ctx context.Context, tx *ent.Tx, req AcquireRequest) (*ent.ResourceLock, func(), error) {
	now := time.Now()

	// Row-lock the active set so two concurrent acquires serialize.
	active, err := tx.ResourceLock.Query().
		Where(
			resourcelock.ResourceTypeEQ(req.ResourceType),
			resourcelock.ResourceIDEQ(req.ResourceID),
			resourcelock.ReleasedAtIsNil(),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query active locks: %w", err)
	}

	var emits []func()
	for _, l := range active {
		// Expired-but-unswept locks don't block acquisition. They are
		// released here, inside the acquire transaction, so the partial
		// unique index on active exclusive locks accepts the insert below.
		if l.ExpiresAt != nil && l.ExpiresAt.Before(now) {
			if err := tx.ResourceLock.UpdateOneID(l.ID).
				SetReleasedAt(now).
				AddVersion(1).
				Exec(ctx); err != nil {
				return nil, nil, fmt.Errorf("failed to release expired lock: %w", err)
			}
			emit, err := m.publisher.PublishTx(ctx, tx, events.EventLockExpired, events.EntityLock, l.ID,
				events.LockPayload{
					LockID:       l.ID,
					ResourceType: l.ResourceType,
					ResourceID:   l.ResourceID,
					TaskID:       l.LockedByTaskID,
					Mode:         string(l.LockMode),
				})
			if err != nil {
				return nil, nil, err
			}
			emits = append(emits, emit)
			continue
		}
		if req.Mode == resourcelock.LockModeExclusive || l.LockMode == resourcelock.LockModeExclusive {
			return nil, nil, nil
		}
	}

	ttl := req.TTL
	if ttl == 0 && m.cfg != nil {
		ttl = m.cfg.DefaultTTL
	}

	create := tx.ResourceLock.Create().
		SetID(uuid.New().String()).
		SetResourceType(req.ResourceType).
		SetResourceID(req.ResourceID).
		SetLockedByTaskID(req.TaskID).
		SetLockedByAgentID(req.AgentID).
		SetLockMode(req.Mode).
		SetAcquiredAt(now)
	if ttl > 0 {
		create.SetExpiresAt(now.Add(ttl))
	}

	lock, err := create.Save(ctx)
	if err != nil {
		// The unique index on active exclusive locks caught a phantom:
		// a concurrent acquire committed between our scan and this
		// insert. Degrade to an ordinary conflict.
		if ent.IsConstraintError(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to insert lock: %w", err)
	}

	emit, err := m.publisher.PublishTx(ctx, tx, events.EventLockAcquired, events.EntityLock, lock.ID,
		events.LockPayload{
			LockID:       lock.ID,
			ResourceType: lock.ResourceType,
			ResourceID:   lock.ResourceID,
			TaskID:       lock.LockedByTaskID,
			Mode:         string(lock.LockMode),
		})
	if err != nil {
		return nil, nil, err
	}

	emits = append(emits, emit)
	return lock, func() {
		for _, e := range emits {
			e()
		}
	}, nil
}

// Release releases a lock by ID. Idempotent: releasing an already
// released (or unknown) lock returns true without side effects.
func (m *Manager) Release(ctx context.Context, lockID string) (bool, error) {
	lock, err := m.client.ResourceLock.Query().
		Where(resourcelock.IDEQ(lockID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to load lock: %w", err)
	}
	if lock.ReleasedAt != nil {
		return true, nil
	}

	// Optimistic: only release the version we read. A concurrent release
	// winning the race is still a successful release from our side.
	n, err := m.client.ResourceLock.Update().
		Where(
			resourcelock.IDEQ(lockID),
			resourcelock.VersionEQ(lock.Version),
			resourcelock.ReleasedAtIsNil(),
		).
		SetReleasedAt(time.Now()).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to release lock: %w", err)
	}
	if n > 0 {
		m.publisher.MustPublish(ctx, events.EventLockReleased, events.EntityLock, lock.ID,
			events.LockPayload{
				LockID:       lock.ID,
				ResourceType: lock.ResourceType,
				ResourceID:   lock.ResourceID,
				TaskID:       lock.LockedByTaskID,
				Mode:         string(lock.LockMode),
			})
	}
	return true, nil
}

// ReleaseTaskLocks releases every active lock held by a task. Invoked on
// every terminal task transition. Returns the number released.
func (m *Manager) ReleaseTaskLocks(ctx context.Context, taskID string) (int, error) {
	held, err := m.client.ResourceLock.Query().
		Where(
			resourcelock.LockedByTaskIDEQ(taskID),
			resourcelock.ReleasedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query task locks: %w", err)
	}

	released := 0
	for _, lock := range held {
		ok, err := m.Release(ctx, lock.ID)
		if err != nil {
			slog.Error("Failed to release task lock",
				"lock_id", lock.ID, "task_id", taskID, "error", err)
			continue
		}
		if ok {
			released++
		}
	}
	return released, nil
}

// CleanupExpired releases every lock whose TTL has lapsed and emits
// lock.expired for each. Returns the number swept.
func (m *Manager) CleanupExpired(ctx context.Context) (int, error) {
	now := time.Now()
	expired, err := m.client.ResourceLock.Query().
		Where(
			resourcelock.ReleasedAtIsNil(),
			resourcelock.ExpiresAtNotNil(),
			resourcelock.ExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired locks: %w", err)
	}

	swept := 0
	for _, lock := range expired {
		n, err := m.client.ResourceLock.Update().
			Where(
				resourcelock.IDEQ(lock.ID),
				resourcelock.ReleasedAtIsNil(),
			).
			SetReleasedAt(now).
			AddVersion(1).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to release expired lock", "lock_id", lock.ID, "error", err)
			continue
		}
		if n == 0 {
			continue // released concurrently
		}
		swept++
		m.publisher.MustPublish(ctx, events.EventLockExpired, events.EntityLock, lock.ID,
			events.LockPayload{
				LockID:       lock.ID,
				ResourceType: lock.ResourceType,
				ResourceID:   lock.ResourceID,
				TaskID:       lock.LockedByTaskID,
				Mode:         string(lock.LockMode),
			})
	}
	return swept, nil
}

// IsLocked reports whether the resource has any active, unexpired lock.
func (m *Manager) IsLocked(ctx context.Context, resourceType, resourceID string) (bool, error) {
	now := time.Now()
	n, err := m.client.ResourceLock.Query().
		Where(
			resourcelock.ResourceTypeEQ(resourceType),
			resourcelock.ResourceIDEQ(resourceID),
			resourcelock.ReleasedAtIsNil(),
			resourcelock.Or(
				resourcelock.ExpiresAtIsNil(),
				resourcelock.ExpiresAtGTE(now),
			),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count active locks: %w", err)
	}
	return n > 0, nil
}

// ListActive returns active locks matching the filters.
func (m *Manager) ListActive(ctx context.Context, f Filters) ([]*ent.ResourceLock, error) {
	q := m.client.ResourceLock.Query().
		Where(resourcelock.ReleasedAtIsNil())
	if f.ResourceType != "" {
		q = q.Where(resourcelock.ResourceTypeEQ(f.ResourceType))
	}
	if f.TaskID != "" {
		q = q.Where(resourcelock.LockedByTaskIDEQ(f.TaskID))
	}
	if f.AgentID != "" {
		q = q.Where(resourcelock.LockedByAgentIDEQ(f.AgentID))
	}
	if f.Mode != "" {
		q = q.Where(resourcelock.LockModeEQ(f.Mode))
	}
	locks, err := q.Order(ent.Asc(resourcelock.FieldAcquiredAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locks: %w", err)
	}
	return locks, nil
}
