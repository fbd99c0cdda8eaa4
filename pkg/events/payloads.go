package events

// TaskAssignedPayload is published as TASK_ASSIGNED when the orchestrator
// commits an assignment.
type TaskAssignedPayload struct {
	TaskID        string  `json:"task_id"`
	TicketID      string  `json:"ticket_id"`
	AgentID       string  `json:"agent_id"`
	TaskType      string  `json:"task_type"`
	PriorityScore float64 `json:"priority_score"`
}

// TaskCompletedPayload is published as TASK_COMPLETED.
type TaskCompletedPayload struct {
	TaskID     string `json:"task_id"`
	TicketID   string `json:"ticket_id"`
	AgentID    string `json:"agent_id"`
	DurationMs int64  `json:"duration_ms"`
}

// TaskFailedPayload is published as TASK_FAILED.
type TaskFailedPayload struct {
	TaskID     string `json:"task_id"`
	TicketID   string `json:"ticket_id"`
	AgentID    string `json:"agent_id,omitempty"`
	Error      string `json:"error"`
	RetryCount int    `json:"retry_count"`
	WillRetry  bool   `json:"will_retry"`
}

// AgentQuarantinedPayload is published as agent.quarantined.
type AgentQuarantinedPayload struct {
	AgentID      string  `json:"agent_id"`
	AnomalyScore float64 `json:"anomaly_score"`
	TaskID       string  `json:"task_id,omitempty"`
}

// AgentAnomalyPayload is published as monitor.agent.anomaly whenever an
// agent's composite score reaches the configured threshold.
type AgentAnomalyPayload struct {
	AgentID             string  `json:"agent_id"`
	Score               float64 `json:"score"`
	ConsecutiveReadings int     `json:"consecutive_readings"`
	ShouldQuarantine    bool    `json:"should_quarantine"`
}

// MetricAnomalyPayload is published as monitor.anomaly.detected for
// rolling-window statistical anomalies.
type MetricAnomalyPayload struct {
	AnomalyID        string            `json:"anomaly_id"`
	MetricName       string            `json:"metric_name"`
	AnomalyType      string            `json:"anomaly_type"` // spike | drop
	Severity         string            `json:"severity"`
	BaselineValue    float64           `json:"baseline_value"`
	ObservedValue    float64           `json:"observed_value"`
	DeviationPercent float64           `json:"deviation_percent"`
	Labels           map[string]string `json:"labels,omitempty"`
}

// LockPayload is published for lock.acquired / lock.released / lock.expired.
type LockPayload struct {
	LockID       string `json:"lock_id"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	TaskID       string `json:"task_id"`
	Mode         string `json:"mode"`
}

// MessageSentPayload is published as agent.message.sent.
type MessageSentPayload struct {
	MessageID   string `json:"message_id"`
	ThreadID    string `json:"thread_id"`
	FromAgentID string `json:"from_agent_id"`
	ToAgentID   string `json:"to_agent_id,omitempty"` // empty for broadcasts
	MessageType string `json:"message_type"`
}

// HandoffPayload is published for agent.handoff.requested|accepted|declined.
type HandoffPayload struct {
	ThreadID    string `json:"thread_id"`
	TaskID      string `json:"task_id"`
	FromAgentID string `json:"from_agent_id"`
	ToAgentID   string `json:"to_agent_id"`
	Reason      string `json:"reason,omitempty"`
}
