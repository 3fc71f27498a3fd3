package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
)

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	o.Started()
	o.Started()
	o.Committed(250 * core.Millisecond)
	o.RolledBack(true)
	o.RolledBack(false)
	o.RolledBack(true)
	o.HookFailed(uow.PhaseCommit)
	o.Unresolved()

	assert.Equal(t, float64(2), testutil.ToFloat64(o.started))
	assert.Equal(t, float64(1), testutil.ToFloat64(o.committed))
	assert.Equal(t, float64(2), testutil.ToFloat64(o.rolledBack.WithLabelValues("error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(o.rolledBack.WithLabelValues("explicit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(o.hookFailed.WithLabelValues("commit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(o.unresolved))

	count, err := testutil.GatherAndCount(reg, "dbcoord_uow_commit_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("Registering twice fails", func(t *testing.T) {
		_, err := NewPrometheusObserver(reg)
		assert.Error(t, err)
	})
}

func TestPrometheusObserver_PoolStats(t *testing.T) {
	o, err := NewPrometheusObserver(prometheus.NewRegistry())
	require.NoError(t, err)

	o.RecordPoolStats(sql.DBStats{
		OpenConnections: 5,
		InUse:           3,
		Idle:            2,
		WaitCount:       7,
		WaitDuration:    1500 * time.Millisecond,
	})

	assert.Equal(t, float64(5), testutil.ToFloat64(o.poolOpen))
	assert.Equal(t, float64(3), testutil.ToFloat64(o.poolInUse))
	assert.Equal(t, float64(2), testutil.ToFloat64(o.poolIdle))
	assert.Equal(t, float64(7), testutil.ToFloat64(o.poolWaits))
	assert.Equal(t, 1.5, testutil.ToFloat64(o.poolWaitSec))
}
