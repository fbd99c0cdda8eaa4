package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/omoi-os/omoios/ent"
)

// Publisher writes the durable Event row and then fans the event out on
// the in-process bus. The row insert happens strictly before publication;
// if the insert fails the event is not published and the error surfaces
// to the caller.
type Publisher struct {
	client *ent.Client
	bus    *Bus
}

// NewPublisher creates a Publisher.
func NewPublisher(client *ent.Client, bus *Bus) *Publisher {
	return &Publisher{client: client, bus: bus}
}

// Bus exposes the underlying in-process bus for subscribers.
func (p *Publisher) Bus() *Bus {
	return p.bus
}

// Publish persists the event and fans it out.
func (p *Publisher) Publish(ctx context.Context, eventType, entityType, entityID string, payload any) error {
	payloadMap, err := toPayloadMap(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	now := time.Now()
	row, err := p.client.Event.Create().
		SetEventType(eventType).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetPayload(payloadMap).
		SetTimestamp(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist %s event: %w", eventType, err)
	}

	p.bus.Publish(Event{
		ID:         row.ID,
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payloadMap,
		Timestamp:  now,
	})
	return nil
}

// PublishTx persists the event inside the caller's transaction and
// returns a fan-out function to invoke after commit. Publishing before
// commit would leak state the transaction may yet roll back.
func (p *Publisher) PublishTx(ctx context.Context, tx *ent.Tx, eventType, entityType, entityID string, payload any) (func(), error) {
	payloadMap, err := toPayloadMap(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	now := time.Now()
	row, err := tx.Event.Create().
		SetEventType(eventType).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetPayload(payloadMap).
		SetTimestamp(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist %s event: %w", eventType, err)
	}

	evt := Event{
		ID:         row.ID,
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payloadMap,
		Timestamp:  now,
	}
	return func() { p.bus.Publish(evt) }, nil
}

// MustPublish is Publish with the error reduced to a log line, for
// call sites where the surrounding operation must not fail on audit
// trouble (the state change itself already committed).
func (p *Publisher) MustPublish(ctx context.Context, eventType, entityType, entityID string, payload any) {
	if err := p.Publish(ctx, eventType, entityType, entityID, payload); err != nil {
		slog.Error("Failed to publish event",
			"event_type", eventType,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
	}
}

// toPayloadMap converts a typed payload struct (or map) to the generic
// map stored in the events table.
func toPayloadMap(payload any) (map[string]any, error) {
	if payload == nil {
		return nil, nil
	}
	if m, ok := payload.(map[string]any); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
