// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "phase_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "running", "degraded", "quarantined", "dead"}, Default: "idle"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "anomaly_score", Type: field.TypeFloat64, Default: 0},
		{Name: "consecutive_anomalous_readings", Type: field.TypeInt, Default: 0},
		{Name: "workspace_dir", Type: field.TypeString, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "persistence_dir", Type: field.TypeString, Nullable: true},
		{Name: "last_idle_since", Type: field.TypeTime, Nullable: true},
		{Name: "last_quarantined_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
			{
				Name:    "agent_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agent_status_phase_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3], AgentsColumns[2]},
			},
		},
	}
	// AgentBaselinesColumns holds the columns for the "agent_baselines" table.
	AgentBaselinesColumns = []*schema.Column{
		{Name: "baseline_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "phase_id", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_std", Type: field.TypeFloat64, Default: 0},
		{Name: "error_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "cpu_usage_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "memory_usage_mb", Type: field.TypeFloat64, Default: 0},
		{Name: "additional_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "sample_count", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// AgentBaselinesTable holds the schema information for the "agent_baselines" table.
	AgentBaselinesTable = &schema.Table{
		Name:       "agent_baselines",
		Columns:    AgentBaselinesColumns,
		PrimaryKey: []*schema.Column{AgentBaselinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentbaseline_agent_type_phase_id",
				Unique:  true,
				Columns: []*schema.Column{AgentBaselinesColumns[1], AgentBaselinesColumns[2]},
			},
		},
	}
	// AgentMessagesColumns holds the columns for the "agent_messages" table.
	AgentMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "from_agent_id", Type: field.TypeString},
		{Name: "to_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "message_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// AgentMessagesTable holds the schema information for the "agent_messages" table.
	AgentMessagesTable = &schema.Table{
		Name:       "agent_messages",
		Columns:    AgentMessagesColumns,
		PrimaryKey: []*schema.Column{AgentMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_messages_collaboration_threads_messages",
				Columns:    []*schema.Column{AgentMessagesColumns[8]},
				RefColumns: []*schema.Column{CollaborationThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentmessage_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[8], AgentMessagesColumns[7]},
			},
			{
				Name:    "agentmessage_to_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[2]},
			},
		},
	}
	// CollaborationThreadsColumns holds the columns for the "collaboration_threads" table.
	CollaborationThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "thread_type", Type: field.TypeEnum, Enums: []string{"handoff", "review", "consultation"}},
		{Name: "participants", Type: field.TypeJSON},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "resolved", "abandoned"}, Default: "active"},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CollaborationThreadsTable holds the schema information for the "collaboration_threads" table.
	CollaborationThreadsTable = &schema.Table{
		Name:       "collaboration_threads",
		Columns:    CollaborationThreadsColumns,
		PrimaryKey: []*schema.Column{CollaborationThreadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collaborationthread_status",
				Unique:  false,
				Columns: []*schema.Column{CollaborationThreadsColumns[5]},
			},
			{
				Name:    "collaborationthread_thread_type_status",
				Unique:  false,
				Columns: []*schema.Column{CollaborationThreadsColumns[1], CollaborationThreadsColumns[5]},
			},
			{
				Name:    "collaborationthread_task_id",
				Unique:  false,
				Columns: []*schema.Column{CollaborationThreadsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[3]},
			},
			{
				Name:    "event_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
		},
	}
	// MonitorAnomaliesColumns holds the columns for the "monitor_anomalies" table.
	MonitorAnomaliesColumns = []*schema.Column{
		{Name: "anomaly_id", Type: field.TypeString, Unique: true},
		{Name: "metric_name", Type: field.TypeString},
		{Name: "anomaly_type", Type: field.TypeEnum, Enums: []string{"spike", "drop"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}},
		{Name: "baseline_value", Type: field.TypeFloat64},
		{Name: "observed_value", Type: field.TypeFloat64},
		{Name: "deviation_percent", Type: field.TypeFloat64},
		{Name: "labels", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_at", Type: field.TypeTime},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
	}
	// MonitorAnomaliesTable holds the schema information for the "monitor_anomalies" table.
	MonitorAnomaliesTable = &schema.Table{
		Name:       "monitor_anomalies",
		Columns:    MonitorAnomaliesColumns,
		PrimaryKey: []*schema.Column{MonitorAnomaliesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "monitoranomaly_metric_name",
				Unique:  false,
				Columns: []*schema.Column{MonitorAnomaliesColumns[1]},
			},
			{
				Name:    "monitoranomaly_detected_at",
				Unique:  false,
				Columns: []*schema.Column{MonitorAnomaliesColumns[8]},
			},
			{
				Name:    "monitoranomaly_severity_detected_at",
				Unique:  false,
				Columns: []*schema.Column{MonitorAnomaliesColumns[3], MonitorAnomaliesColumns[8]},
			},
		},
	}
	// ResourceLocksColumns holds the columns for the "resource_locks" table.
	ResourceLocksColumns = []*schema.Column{
		{Name: "lock_id", Type: field.TypeString, Unique: true},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "locked_by_task_id", Type: field.TypeString},
		{Name: "locked_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "lock_mode", Type: field.TypeEnum, Enums: []string{"exclusive", "shared"}},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 0},
	}
	// ResourceLocksTable holds the schema information for the "resource_locks" table.
	ResourceLocksTable = &schema.Table{
		Name:       "resource_locks",
		Columns:    ResourceLocksColumns,
		PrimaryKey: []*schema.Column{ResourceLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resourcelock_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[1], ResourceLocksColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "released_at IS NULL",
				},
			},
			{
				Name:    "resourcelock_exclusive_active",
				Unique:  true,
				Columns: []*schema.Column{ResourceLocksColumns[1], ResourceLocksColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "released_at IS NULL AND lock_mode = 'exclusive'",
				},
			},
			{
				Name:    "resourcelock_locked_by_task_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[3]},
			},
			{
				Name:    "resourcelock_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "released_at IS NULL",
				},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "phase_id", Type: field.TypeString, Nullable: true},
		{Name: "task_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "running", "completed", "failed", "blocked", "cancelled"}, Default: "pending"},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "required_capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "required_resources", Type: field.TypeJSON, Nullable: true},
		{Name: "priority_score", Type: field.TypeFloat64, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_tickets_tasks",
				Columns:    []*schema.Column{TasksColumns[20]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_priority_score",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[16]},
			},
			{
				Name:    "task_assigned_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[5]},
			},
			{
				Name:    "task_ticket_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[20]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[18]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "phase_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "blocked", "done", "archived"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "estimate", Type: field.TypeEnum, Nullable: true, Enums: []string{"xs", "s", "m", "l", "xl"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4]},
			},
			{
				Name:    "ticket_phase_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[3]},
			},
			{
				Name:    "ticket_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4], TicketsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentBaselinesTable,
		AgentMessagesTable,
		CollaborationThreadsTable,
		EventsTable,
		MonitorAnomaliesTable,
		ResourceLocksTable,
		TasksTable,
		TicketsTable,
	}
)

func init() {
	AgentMessagesTable.ForeignKeys[0].RefTable = CollaborationThreadsTable
	TasksTable.ForeignKeys[0].RefTable = TicketsTable
}
