package services

import (
	"context"
	"fmt"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/event"
)

// EventService reads the durable event trail. Subscribers that missed
// in-process deliveries catch up from here using the row ID as cursor.
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventFilters narrows queries over the trail.
type EventFilters struct {
	EventType  string
	EntityType string
	EntityID   string
	Limit      int
}

const defaultEventPageSize = 100

// GetEventsSince returns events with ID > afterID in insertion order.
func (s *EventService) GetEventsSince(ctx context.Context, afterID int, filters EventFilters) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(event.IDGT(afterID))
	if filters.EventType != "" {
		query.Where(event.EventTypeEQ(filters.EventType))
	}
	if filters.EntityType != "" {
		query.Where(event.EntityTypeEQ(filters.EntityType))
	}
	if filters.EntityID != "" {
		query.Where(event.EntityIDEQ(filters.EntityID))
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultEventPageSize
	}
	rows, err := query.
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return rows, nil
}
