package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the conversation engine.
type ChatMetrics struct {
	turnsTotal        *prometheus.CounterVec
	translationsTotal *prometheus.CounterVec
	submissionsTotal  *prometheus.CounterVec
	llmLatency        prometheus.Histogram
	llmFallbacks      prometheus.Counter
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agency",
			Subsystem: "assistant",
			Name:      "turns_total",
			Help:      "Chat turns processed, by classified intent and readiness",
		}, []string{"intent", "ready"}),
		translationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agency",
			Subsystem: "translation",
			Name:      "resolved_total",
			Help:      "Translations resolved, by pipeline tier",
		}, []string{"method"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agency",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Booking/contact submissions, by type and outcome",
		}, []string{"type", "status"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agency",
			Subsystem: "assistant",
			Name:      "llm_latency_seconds",
			Help:      "Latency of remote LLM completions",
			Buckets:   prometheus.DefBuckets,
		}),
		llmFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agency",
			Subsystem: "assistant",
			Name:      "llm_fallbacks_total",
			Help:      "Turns answered by templates after an LLM failure",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.translationsTotal, m.submissionsTotal, m.llmLatency, m.llmFallbacks)
	return m
}

func (m *ChatMetrics) ObserveTurn(intent string, ready bool) {
	if m == nil {
		return
	}
	label := "false"
	if ready {
		label = "true"
	}
	m.turnsTotal.WithLabelValues(intent, label).Inc()
}

func (m *ChatMetrics) ObserveTranslation(method string) {
	if m == nil {
		return
	}
	m.translationsTotal.WithLabelValues(method).Inc()
}

func (m *ChatMetrics) ObserveSubmission(kind, status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(kind, status).Inc()
}

func (m *ChatMetrics) ObserveLLMLatency(seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(seconds)
}

func (m *ChatMetrics) ObserveLLMFallback() {
	if m == nil {
		return
	}
	m.llmFallbacks.Inc()
}
