package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/ticket"
	"github.com/omoi-os/omoios/pkg/events"
)

// TicketService owns the ticket lifecycle exposed on the inbound API.
type TicketService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewTicketService creates a TicketService.
func NewTicketService(client *ent.Client, publisher *events.Publisher) *TicketService {
	return &TicketService{client: client, publisher: publisher}
}

// CreateTicketInput carries the submit-ticket operation's fields.
type CreateTicketInput struct {
	Title       string
	Description string
	PhaseID     string
	Priority    string
	ProjectID   *string
	Estimate    *string
}

// UpdateTicketInput updates only the fields that are set.
type UpdateTicketInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Estimate    *string
}

// TicketFilters narrows List.
type TicketFilters struct {
	Status  string
	PhaseID string
	Limit   int
}

// Create validates and persists a ticket and publishes TICKET_CREATED.
func (s *TicketService) Create(ctx context.Context, input CreateTicketInput) (*ent.Ticket, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if input.PhaseID == "" {
		return nil, NewValidationError("phase_id", "phase_id is required")
	}
	priority := ticket.PriorityMedium
	if input.Priority != "" {
		priority = ticket.Priority(input.Priority)
		if err := ticket.PriorityValidator(priority); err != nil {
			return nil, NewValidationError("priority", err.Error())
		}
	}

	create := s.client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTitle(input.Title).
		SetDescription(input.Description).
		SetPhaseID(input.PhaseID).
		SetPriority(priority)
	if input.ProjectID != nil {
		create.SetProjectID(*input.ProjectID)
	}
	if input.Estimate != nil {
		estimate := ticket.Estimate(*input.Estimate)
		if err := ticket.EstimateValidator(estimate); err != nil {
			return nil, NewValidationError("estimate", err.Error())
		}
		create.SetEstimate(estimate)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.publisher.MustPublish(ctx, events.EventTicketCreated, events.EntityTicket, row.ID,
		map[string]interface{}{
			"ticket_id": row.ID,
			"title":     row.Title,
			"phase_id":  row.PhaseID,
			"priority":  string(row.Priority),
		})
	return row, nil
}

// Update applies a partial update and publishes TICKET_UPDATED listing the
// changed fields.
func (s *TicketService) Update(ctx context.Context, ticketID string, input UpdateTicketInput) (*ent.Ticket, error) {
	update := s.client.Ticket.UpdateOneID(ticketID)
	changed := make([]string, 0, 5)

	if input.Title != nil {
		if *input.Title == "" {
			return nil, NewValidationError("title", "title cannot be empty")
		}
		update.SetTitle(*input.Title)
		changed = append(changed, "title")
	}
	if input.Description != nil {
		update.SetDescription(*input.Description)
		changed = append(changed, "description")
	}
	if input.Status != nil {
		status := ticket.Status(*input.Status)
		if err := ticket.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		update.SetStatus(status)
		changed = append(changed, "status")
	}
	if input.Priority != nil {
		priority := ticket.Priority(*input.Priority)
		if err := ticket.PriorityValidator(priority); err != nil {
			return nil, NewValidationError("priority", err.Error())
		}
		update.SetPriority(priority)
		changed = append(changed, "priority")
	}
	if input.Estimate != nil {
		estimate := ticket.Estimate(*input.Estimate)
		if err := ticket.EstimateValidator(estimate); err != nil {
			return nil, NewValidationError("estimate", err.Error())
		}
		update.SetEstimate(estimate)
		changed = append(changed, "estimate")
	}
	if len(changed) == 0 {
		return nil, NewValidationError("body", "no fields to update")
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.publisher.MustPublish(ctx, events.EventTicketUpdated, events.EntityTicket, row.ID,
		map[string]interface{}{
			"ticket_id":      row.ID,
			"changed_fields": changed,
		})
	return row, nil
}

// Get returns one ticket.
func (s *TicketService) Get(ctx context.Context, ticketID string) (*ent.Ticket, error) {
	row, err := s.client.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return row, nil
}

// List returns tickets newest first.
func (s *TicketService) List(ctx context.Context, filters TicketFilters) ([]*ent.Ticket, error) {
	query := s.client.Ticket.Query()
	if filters.Status != "" {
		status := ticket.Status(filters.Status)
		if err := ticket.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query.Where(ticket.StatusEQ(status))
	}
	if filters.PhaseID != "" {
		query.Where(ticket.PhaseIDEQ(filters.PhaseID))
	}
	query.Order(ent.Desc(ticket.FieldCreatedAt))
	if filters.Limit > 0 {
		query.Limit(filters.Limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return rows, nil
}
