package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the auth module.
// Tracks sign-ups, login outcomes and login latency (bcrypt dominates it).
type Metrics struct {
	UsersCreated  prometheus.Counter
	LoginAttempts *prometheus.CounterVec
	LoginDuration prometheus.Histogram
}

// New creates a new Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_users_created_total",
			Help: "Total number of users created",
		}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "promptserver_login_attempts_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		LoginDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "promptserver_login_duration_seconds",
			Help:    "Duration of Login operations",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

// IncrementLogin records a login outcome: "success" or "failure".
func (m *Metrics) IncrementLogin(result string) {
	m.LoginAttempts.WithLabelValues(result).Inc()
}

// ObserveLogin records the duration of a Login operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveLogin(start time.Time) {
	m.LoginDuration.Observe(time.Since(start).Seconds())
}
