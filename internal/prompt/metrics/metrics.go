package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks prompt lifecycle events.
type Metrics struct {
	PromptsCreated  prometheus.Counter
	PromptsDeleted  prometheus.Counter
	VersionsCreated *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PromptsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_prompts_created_total",
			Help: "Total number of prompt templates created",
		}),
		PromptsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "promptserver_prompts_deleted_total",
			Help: "Total number of prompt templates logically deleted",
		}),
		VersionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "promptserver_prompt_versions_created_total",
			Help: "Prompt versions created by action type",
		}, []string{"action"}),
	}
}

func (m *Metrics) IncrementPromptsCreated() {
	m.PromptsCreated.Inc()
}

func (m *Metrics) IncrementPromptsDeleted() {
	m.PromptsDeleted.Inc()
}

func (m *Metrics) IncrementVersionsCreated(action string) {
	m.VersionsCreated.WithLabelValues(action).Inc()
}
