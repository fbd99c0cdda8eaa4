// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/agentbaseline"
	"github.com/omoi-os/omoios/ent/agentmessage"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/event"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/ent/schema"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/ent/ticket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescAnomalyScore is the schema descriptor for anomaly_score field.
	agentDescAnomalyScore := agentFields[6].Descriptor()
	// agent.DefaultAnomalyScore holds the default value on creation for the anomaly_score field.
	agent.DefaultAnomalyScore = agentDescAnomalyScore.Default.(float64)
	// agentDescConsecutiveAnomalousReadings is the schema descriptor for consecutive_anomalous_readings field.
	agentDescConsecutiveAnomalousReadings := agentFields[7].Descriptor()
	// agent.DefaultConsecutiveAnomalousReadings holds the default value on creation for the consecutive_anomalous_readings field.
	agent.DefaultConsecutiveAnomalousReadings = agentDescConsecutiveAnomalousReadings.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[13].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[14].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentbaselineFields := schema.AgentBaseline{}.Fields()
	_ = agentbaselineFields
	// agentbaselineDescPhaseID is the schema descriptor for phase_id field.
	agentbaselineDescPhaseID := agentbaselineFields[2].Descriptor()
	// agentbaseline.DefaultPhaseID holds the default value on creation for the phase_id field.
	agentbaseline.DefaultPhaseID = agentbaselineDescPhaseID.Default.(string)
	// agentbaselineDescLatencyMs is the schema descriptor for latency_ms field.
	agentbaselineDescLatencyMs := agentbaselineFields[3].Descriptor()
	// agentbaseline.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	agentbaseline.DefaultLatencyMs = agentbaselineDescLatencyMs.Default.(float64)
	// agentbaselineDescLatencyStd is the schema descriptor for latency_std field.
	agentbaselineDescLatencyStd := agentbaselineFields[4].Descriptor()
	// agentbaseline.DefaultLatencyStd holds the default value on creation for the latency_std field.
	agentbaseline.DefaultLatencyStd = agentbaselineDescLatencyStd.Default.(float64)
	// agentbaselineDescErrorRate is the schema descriptor for error_rate field.
	agentbaselineDescErrorRate := agentbaselineFields[5].Descriptor()
	// agentbaseline.DefaultErrorRate holds the default value on creation for the error_rate field.
	agentbaseline.DefaultErrorRate = agentbaselineDescErrorRate.Default.(float64)
	// agentbaselineDescCPUUsagePercent is the schema descriptor for cpu_usage_percent field.
	agentbaselineDescCPUUsagePercent := agentbaselineFields[6].Descriptor()
	// agentbaseline.DefaultCPUUsagePercent holds the default value on creation for the cpu_usage_percent field.
	agentbaseline.DefaultCPUUsagePercent = agentbaselineDescCPUUsagePercent.Default.(float64)
	// agentbaselineDescMemoryUsageMB is the schema descriptor for memory_usage_mb field.
	agentbaselineDescMemoryUsageMB := agentbaselineFields[7].Descriptor()
	// agentbaseline.DefaultMemoryUsageMB holds the default value on creation for the memory_usage_mb field.
	agentbaseline.DefaultMemoryUsageMB = agentbaselineDescMemoryUsageMB.Default.(float64)
	// agentbaselineDescSampleCount is the schema descriptor for sample_count field.
	agentbaselineDescSampleCount := agentbaselineFields[9].Descriptor()
	// agentbaseline.DefaultSampleCount holds the default value on creation for the sample_count field.
	agentbaseline.DefaultSampleCount = agentbaselineDescSampleCount.Default.(int)
	// agentbaselineDescLastUpdated is the schema descriptor for last_updated field.
	agentbaselineDescLastUpdated := agentbaselineFields[10].Descriptor()
	// agentbaseline.DefaultLastUpdated holds the default value on creation for the last_updated field.
	agentbaseline.DefaultLastUpdated = agentbaselineDescLastUpdated.Default.(func() time.Time)
	agentmessageFields := schema.AgentMessage{}.Fields()
	_ = agentmessageFields
	// agentmessageDescCreatedAt is the schema descriptor for created_at field.
	agentmessageDescCreatedAt := agentmessageFields[8].Descriptor()
	// agentmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentmessage.DefaultCreatedAt = agentmessageDescCreatedAt.Default.(func() time.Time)
	collaborationthreadFields := schema.CollaborationThread{}.Fields()
	_ = collaborationthreadFields
	// collaborationthreadDescCreatedAt is the schema descriptor for created_at field.
	collaborationthreadDescCreatedAt := collaborationthreadFields[7].Descriptor()
	// collaborationthread.DefaultCreatedAt holds the default value on creation for the created_at field.
	collaborationthread.DefaultCreatedAt = collaborationthreadDescCreatedAt.Default.(func() time.Time)
	// collaborationthreadDescUpdatedAt is the schema descriptor for updated_at field.
	collaborationthreadDescUpdatedAt := collaborationthreadFields[8].Descriptor()
	// collaborationthread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collaborationthread.DefaultUpdatedAt = collaborationthreadDescUpdatedAt.Default.(func() time.Time)
	// collaborationthread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	collaborationthread.UpdateDefaultUpdatedAt = collaborationthreadDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTimestamp is the schema descriptor for timestamp field.
	eventDescTimestamp := eventFields[4].Descriptor()
	// event.DefaultTimestamp holds the default value on creation for the timestamp field.
	event.DefaultTimestamp = eventDescTimestamp.Default.(func() time.Time)
	monitoranomalyFields := schema.MonitorAnomaly{}.Fields()
	_ = monitoranomalyFields
	// monitoranomalyDescDetectedAt is the schema descriptor for detected_at field.
	monitoranomalyDescDetectedAt := monitoranomalyFields[8].Descriptor()
	// monitoranomaly.DefaultDetectedAt holds the default value on creation for the detected_at field.
	monitoranomaly.DefaultDetectedAt = monitoranomalyDescDetectedAt.Default.(func() time.Time)
	resourcelockFields := schema.ResourceLock{}.Fields()
	_ = resourcelockFields
	// resourcelockDescAcquiredAt is the schema descriptor for acquired_at field.
	resourcelockDescAcquiredAt := resourcelockFields[6].Descriptor()
	// resourcelock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	resourcelock.DefaultAcquiredAt = resourcelockDescAcquiredAt.Default.(func() time.Time)
	// resourcelockDescVersion is the schema descriptor for version field.
	resourcelockDescVersion := resourcelockFields[9].Descriptor()
	// resourcelock.DefaultVersion holds the default value on creation for the version field.
	resourcelock.DefaultVersion = resourcelockDescVersion.Default.(int)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[12].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescPriorityScore is the schema descriptor for priority_score field.
	taskDescPriorityScore := taskFields[17].Descriptor()
	// task.DefaultPriorityScore holds the default value on creation for the priority_score field.
	task.DefaultPriorityScore = taskDescPriorityScore.Default.(float64)
	// taskDescVersion is the schema descriptor for version field.
	taskDescVersion := taskFields[18].Descriptor()
	// task.DefaultVersion holds the default value on creation for the version field.
	task.DefaultVersion = taskDescVersion.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[19].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[20].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[8].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[9].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
}
