package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/ent/ticket"
	"github.com/omoi-os/omoios/pkg/models"
)

// TaskService owns task submission and cancellation. Assignment and the
// terminal transitions belong to the orchestrator.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// SubmitTaskInput carries the submit-task operation's fields.
type SubmitTaskInput struct {
	TicketID             string
	PhaseID              string
	TaskType             string
	Description          string
	Priority             string
	Deadline             *time.Time
	DependsOn            []string
	RequiredCapabilities []string
	RequiredResources    []models.ResourceRef
}

// TaskFilters narrows List.
type TaskFilters struct {
	TicketID string
	Status   string
	AgentID  string
	Limit    int
}

// Submit validates and persists a task. The parent ticket must exist and
// the dependency list must not close a cycle in the stored graph.
func (s *TaskService) Submit(ctx context.Context, input SubmitTaskInput) (*ent.Task, error) {
	if input.TaskType == "" {
		return nil, NewValidationError("task_type", "task_type is required")
	}
	priority := task.PriorityMedium
	if input.Priority != "" {
		priority = task.Priority(input.Priority)
		if err := task.PriorityValidator(priority); err != nil {
			return nil, NewValidationError("priority", err.Error())
		}
	}
	for i, ref := range input.RequiredResources {
		if ref.ResourceType == "" || ref.ResourceID == "" {
			return nil, NewValidationError("required_resources",
				fmt.Sprintf("resource %d is missing type or id", i))
		}
		switch ref.Mode {
		case "", models.LockModeExclusive, models.LockModeShared:
		default:
			return nil, NewValidationError("required_resources",
				fmt.Sprintf("resource %d has unknown mode %q", i, ref.Mode))
		}
	}

	exists, err := s.client.Ticket.Query().
		Where(ticket.IDEQ(input.TicketID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check ticket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("ticket %s: %w", input.TicketID, ErrNotFound)
	}

	if err := s.checkDependencies(ctx, input.DependsOn); err != nil {
		return nil, err
	}

	create := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(input.TicketID).
		SetPhaseID(input.PhaseID).
		SetTaskType(input.TaskType).
		SetDescription(input.Description).
		SetPriority(priority)
	if input.Deadline != nil {
		create.SetDeadline(*input.Deadline)
	}
	if len(input.DependsOn) > 0 {
		create.SetDependsOn(input.DependsOn)
	}
	if len(input.RequiredCapabilities) > 0 {
		create.SetRequiredCapabilities(input.RequiredCapabilities)
	}
	if len(input.RequiredResources) > 0 {
		create.SetRequiredResources(input.RequiredResources)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return row, nil
}

// checkDependencies rejects duplicate entries and any cycle reachable from
// the submitted list through the stored graph. Dependencies on task IDs
// that do not exist yet are allowed; the scheduler gates on them until
// they complete.
func (s *TaskService) checkDependencies(ctx context.Context, dependsOn []string) error {
	seen := make(map[string]struct{}, len(dependsOn))
	for _, dep := range dependsOn {
		if _, dup := seen[dep]; dup {
			return NewValidationError("dependencies", fmt.Sprintf("duplicate dependency %s", dep))
		}
		seen[dep] = struct{}{}
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("task %s depends on itself transitively: %w", id, ErrDependencyCycle)
		case done:
			return nil
		}
		state[id] = visiting

		row, err := s.client.Task.Query().
			Where(task.IDEQ(id)).
			Select(task.FieldDependsOn).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				state[id] = done
				return nil
			}
			return fmt.Errorf("failed to load dependency %s: %w", id, err)
		}
		for _, next := range row.DependsOn {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, dep := range dependsOn {
		if err := visit(dep); err != nil {
			return err
		}
	}
	return nil
}

// Cancel moves a queued task to cancelled. In-flight tasks belong to
// their dispatcher and terminal tasks are immutable; both reject.
func (s *TaskService) Cancel(ctx context.Context, taskID string) (*ent.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	switch current.Status {
	case task.StatusPending, task.StatusBlocked:
	default:
		return nil, fmt.Errorf("task %s is %s: %w", taskID, current.Status, ErrNotCancellable)
	}

	row, err := tx.Task.UpdateOneID(taskID).
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}
	return row, nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, taskID string) (*ent.Task, error) {
	row, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return row, nil
}

// List returns tasks newest first.
func (s *TaskService) List(ctx context.Context, filters TaskFilters) ([]*ent.Task, error) {
	query := s.client.Task.Query()
	if filters.TicketID != "" {
		query.Where(task.TicketIDEQ(filters.TicketID))
	}
	if filters.Status != "" {
		status := task.Status(filters.Status)
		if err := task.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query.Where(task.StatusEQ(status))
	}
	if filters.AgentID != "" {
		query.Where(task.AssignedAgentIDEQ(filters.AgentID))
	}
	query.Order(ent.Desc(task.FieldCreatedAt))
	if filters.Limit > 0 {
		query.Limit(filters.Limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return rows, nil
}

// Dependencies returns the stored depends_on list together with the
// derived inverse: tasks whose depends_on references this one. The
// inverse is never stored.
func (s *TaskService) Dependencies(ctx context.Context, taskID string) (*models.TaskDependencies, error) {
	row, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	blockers, err := s.client.Task.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(task.FieldDependsOn, taskID))
		}).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive blocks: %w", err)
	}

	deps := &models.TaskDependencies{
		DependsOn: row.DependsOn,
		Blocks:    blockers,
	}
	if deps.DependsOn == nil {
		deps.DependsOn = []string{}
	}
	return deps, nil
}
