package database

import (
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
)

type recordedStats struct {
	mu      sync.Mutex
	samples []sql.DBStats
}

func (r *recordedStats) RecordPoolStats(stats sql.DBStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, stats)
}

func (r *recordedStats) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("Start samples the pool immediately", func(t *testing.T) {
		db := newSessionTestDB(t)
		recorder := &recordedStats{}
		monitor := NewConnectionPoolMonitor(db.Manager.DB().DB, logger.NewNopLogger(), recorder)

		require.NoError(t, monitor.Start(time.Hour))
		defer monitor.Stop()

		metrics := monitor.GetMetrics()
		assert.True(t, metrics.Healthy)
		assert.Equal(t, 1, metrics.MaxOpenConnections)
		assert.Equal(t, 1, recorder.count())
	})

	t.Run("Keeps sampling until stopped", func(t *testing.T) {
		db := newSessionTestDB(t)
		recorder := &recordedStats{}
		monitor := NewConnectionPoolMonitor(db.Manager.DB().DB, logger.NewNopLogger(), recorder)

		require.NoError(t, monitor.Start(10*time.Millisecond))
		assert.Eventually(t, func() bool { return recorder.count() >= 3 }, time.Second, 5*time.Millisecond)

		monitor.Stop()
		monitor.Stop()
	})

	t.Run("Unavailable connection fails to start", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(func() (*sql.DB, error) {
			return nil, errors.New("no connection")
		}, logger.NewNopLogger(), nil)

		assert.ErrorContains(t, monitor.Start(time.Hour), "no connection")
		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	})

	t.Run("Closed database is reported unhealthy", func(t *testing.T) {
		db := NewTestDBManager(t, logger.NewNopLogger())
		gormDB := db.Connect(t)
		sqlDB, err := gormDB.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		monitor := NewConnectionPoolMonitor(gormDB.DB, logger.NewNopLogger(), nil)
		require.NoError(t, monitor.Start(time.Hour))
		defer monitor.Stop()

		assert.False(t, monitor.GetMetrics().Healthy)
	})
}
