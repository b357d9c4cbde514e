package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks view recording and the cache sync pipeline.
type Metrics struct {
	ViewsRecorded    *prometheus.CounterVec
	CacheFallbacks   prometheus.Counter
	SyncRuns         prometheus.Counter
	SyncFailures     prometheus.Counter
	SyncedViews      prometheus.Counter
	SyncDuration     prometheus.Histogram
	Inconsistencies  prometheus.Gauge
	RecordPersistErr prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ViewsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "promptserver_views_recorded_total",
			Help: "Views recorded, split into new and duplicate views",
		}, []string{"kind"}),
		CacheFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_view_cache_fallbacks_total",
			Help: "View requests served from the database because the cache was unavailable",
		}),
		SyncRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_view_sync_runs_total",
			Help: "Cache-to-database view sync runs",
		}),
		SyncFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_view_sync_failures_total",
			Help: "Prompts whose pending views could not be synced",
		}),
		SyncedViews: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_view_synced_views_total",
			Help: "Views moved from the cache to the database",
		}),
		SyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "promptserver_view_sync_duration_seconds",
			Help:    "Duration of a full view sync run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120, 300},
		}),
		Inconsistencies: factory.NewGauge(prometheus.GaugeOpts{
			Name: "promptserver_view_count_inconsistencies",
			Help: "Prompts whose stored view count drifted past the threshold at the last check",
		}),
		RecordPersistErr: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_view_record_persist_failures_total",
			Help: "View records that failed to persist asynchronously",
		}),
	}
}

func (m *Metrics) IncrementViews(isNew bool) {
	kind := "duplicate"
	if isNew {
		kind = "new"
	}
	m.ViewsRecorded.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementCacheFallbacks() {
	m.CacheFallbacks.Inc()
}

func (m *Metrics) IncrementPersistFailures() {
	m.RecordPersistErr.Inc()
}

func (m *Metrics) ObserveSync(seconds float64, synced int64, failed int) {
	m.SyncRuns.Inc()
	m.SyncDuration.Observe(seconds)
	m.SyncedViews.Add(float64(synced))
	m.SyncFailures.Add(float64(failed))
}

func (m *Metrics) SetInconsistencies(n int) {
	m.Inconsistencies.Set(float64(n))
}
