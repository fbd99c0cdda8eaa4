package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/test/util"
)

func seedEvent(t *testing.T, client *ent.Client, age time.Duration) int {
	row, err := client.Event.Create().
		SetEventType("TASK_COMPLETED").
		SetEntityType("task").
		SetEntityID(uuid.New().String()).
		SetTimestamp(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func seedAnomaly(t *testing.T, client *ent.Client, age time.Duration, acknowledged bool) string {
	create := client.MonitorAnomaly.Create().
		SetID(uuid.New().String()).
		SetMetricName("tasks.pending").
		SetAnomalyType(monitoranomaly.AnomalyTypeSpike).
		SetSeverity(monitoranomaly.SeverityWarning).
		SetBaselineValue(10).
		SetObservedValue(40).
		SetDeviationPercent(300).
		SetDetectedAt(time.Now().Add(-age))
	if acknowledged {
		create.SetAcknowledgedAt(time.Now().Add(-age))
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func TestSweepPrunesExpiredRows(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := &config.RetentionConfig{
		EventTTL:        24 * time.Hour,
		AnomalyTTL:      7 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}
	svc := NewService(client, cfg)

	oldEvent := seedEvent(t, client, 48*time.Hour)
	freshEvent := seedEvent(t, client, time.Hour)
	oldAcked := seedAnomaly(t, client, 8*24*time.Hour, true)
	oldUnacked := seedAnomaly(t, client, 8*24*time.Hour, false)
	freshAcked := seedAnomaly(t, client, time.Hour, true)

	require.NoError(t, svc.Sweep(ctx))

	_, err := client.Event.Get(ctx, oldEvent)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.Event.Get(ctx, freshEvent)
	assert.NoError(t, err)

	_, err = client.MonitorAnomaly.Get(ctx, oldAcked)
	assert.True(t, ent.IsNotFound(err))
	// Unacknowledged anomalies survive regardless of age.
	_, err = client.MonitorAnomaly.Get(ctx, oldUnacked)
	assert.NoError(t, err)
	_, err = client.MonitorAnomaly.Get(ctx, freshAcked)
	assert.NoError(t, err)
}

func TestSweepLoopRuns(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	cfg := &config.RetentionConfig{
		EventTTL:        time.Millisecond,
		AnomalyTTL:      time.Hour,
		CleanupInterval: 20 * time.Millisecond,
	}
	svc := NewService(client, cfg)

	old := seedEvent(t, client, time.Minute)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		_, err := client.Event.Get(context.Background(), old)
		return ent.IsNotFound(err)
	}, 2*time.Second, 10*time.Millisecond)
}
