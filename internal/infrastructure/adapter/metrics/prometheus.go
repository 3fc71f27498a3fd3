package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
)

const namespace = "dbcoord"

// PrometheusObserver exports unit of work lifecycle events and connection pool samples
type PrometheusObserver struct {
	started    prometheus.Counter
	committed  prometheus.Counter
	rolledBack *prometheus.CounterVec
	hookFailed *prometheus.CounterVec
	unresolved prometheus.Counter
	duration   prometheus.Histogram

	poolOpen    prometheus.Gauge
	poolInUse   prometheus.Gauge
	poolIdle    prometheus.Gauge
	poolWaits   prometheus.Gauge
	poolWaitSec prometheus.Gauge
}

var _ uow.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates the collectors and registers them with reg
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	o := &PrometheusObserver{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "started_total",
			Help:      "Units of work opened.",
		}),
		committed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "committed_total",
			Help:      "Units of work whose session commit succeeded.",
		}),
		rolledBack: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "rolled_back_total",
			Help:      "Units of work rolled back, by whether an error triggered the rollback.",
		}, []string{"cause"}),
		hookFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "hook_failures_total",
			Help:      "Operation hooks that returned an error, by lifecycle phase.",
		}, []string{"phase"}),
		unresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "unresolved_total",
			Help:      "Scopes left without commit or rollback.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "commit_duration_seconds",
			Help:      "Time from opening a unit of work to its session commit.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		poolOpen:    poolGauge("open_connections", "Established connections, in use or idle."),
		poolInUse:   poolGauge("in_use_connections", "Connections currently in use."),
		poolIdle:    poolGauge("idle_connections", "Idle connections."),
		poolWaits:   poolGauge("wait_count", "Connections waited for, since start."),
		poolWaitSec: poolGauge("wait_duration_seconds", "Time blocked waiting for a connection, since start."),
	}

	for _, c := range []prometheus.Collector{
		o.started, o.committed, o.rolledBack, o.hookFailed, o.unresolved, o.duration,
		o.poolOpen, o.poolInUse, o.poolIdle, o.poolWaits, o.poolWaitSec,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func poolGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "db_pool",
		Name:      name,
		Help:      help,
	})
}

func (o *PrometheusObserver) Started() {
	o.started.Inc()
}

func (o *PrometheusObserver) Committed(elapsed core.Duration) {
	o.committed.Inc()
	o.duration.Observe(elapsed.Seconds())
}

func (o *PrometheusObserver) RolledBack(withCause bool) {
	cause := "explicit"
	if withCause {
		cause = "error"
	}
	o.rolledBack.WithLabelValues(cause).Inc()
}

func (o *PrometheusObserver) HookFailed(phase uow.Phase) {
	o.hookFailed.WithLabelValues(string(phase)).Inc()
}

func (o *PrometheusObserver) Unresolved() {
	o.unresolved.Inc()
}

// RecordPoolStats updates the connection pool gauges
func (o *PrometheusObserver) RecordPoolStats(stats sql.DBStats) {
	o.poolOpen.Set(float64(stats.OpenConnections))
	o.poolInUse.Set(float64(stats.InUse))
	o.poolIdle.Set(float64(stats.Idle))
	o.poolWaits.Set(float64(stats.WaitCount))
	o.poolWaitSec.Set(stats.WaitDuration.Seconds())
}
