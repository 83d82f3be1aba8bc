package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "scoreboard", "event")
	ctx := context.Background()

	m.RecordOperationAttempt(ctx, "CreateEvent", "EventService")
	m.RecordOperationAttempt(ctx, "CreateEvent", "EventService")
	m.RecordOperationSuccess(ctx, "CreateEvent", "EventService")
	m.RecordOperationFailure(ctx, "CreateEvent", "EventService")
	m.RecordOperationDuration(ctx, "CreateEvent", "EventService", 20*time.Millisecond)

	pm := m.(*prometheusMetrics)
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.attempts.WithLabelValues("CreateEvent", "EventService")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.successes.WithLabelValues("CreateEvent", "EventService")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.failures.WithLabelValues("CreateEvent", "EventService")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestPrometheusMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewPrometheusMetrics(reg, "scoreboard", "bonus")
	second := NewPrometheusMetrics(reg, "scoreboard", "bonus")

	first.RecordOperationAttempt(context.Background(), "AwardBonus", "BonusService")
	second.RecordOperationAttempt(context.Background(), "AwardBonus", "BonusService")

	pm := second.(*prometheusMetrics)
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.attempts.WithLabelValues("AwardBonus", "BonusService")))
}

func TestNoop(t *testing.T) {
	m := NewNoop()
	assert.NotPanics(t, func() {
		m.RecordOperationAttempt(context.Background(), "op", "svc")
		m.RecordOperationDuration(context.Background(), "op", "svc", time.Second)
	})
}
