package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler returns an http.Handler exposing the given gatherer.
func NewHandler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Service holds the application's prometheus collectors. A nil *Service is a no-op.
type Service struct {
	cacheLookups     *prometheus.CounterVec
	providerRequests *prometheus.CounterVec
	toolCalls        *prometheus.CounterVec
	agentTurns       *prometheus.CounterVec
	agentIterations  prometheus.Histogram
	llmLatency       prometheus.Histogram
}

// NewService creates and registers the collectors on registerer
// (prometheus.DefaultRegisterer when nil).
func NewService(registerer prometheus.Registerer) *Service {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	s := &Service{
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_ai_cache_lookups_total",
			Help: "Cache lookups by namespace and result.",
		}, []string{"namespace", "result"}),
		providerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_ai_provider_requests_total",
			Help: "Requests sent to the match data provider by resource and outcome.",
		}, []string{"resource", "outcome"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_ai_tool_calls_total",
			Help: "Agent tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		agentTurns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_ai_agent_turns_total",
			Help: "Conversation turns by outcome.",
		}, []string{"outcome"}),
		agentIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "football_ai_agent_iterations",
			Help:    "Model calls needed to answer one conversation turn.",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
		}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "football_ai_llm_request_duration_seconds",
			Help:    "Latency of language model requests.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}

	registerer.MustRegister(
		s.cacheLookups,
		s.providerRequests,
		s.toolCalls,
		s.agentTurns,
		s.agentIterations,
		s.llmLatency,
	)
	return s
}

func (s *Service) CacheLookup(namespace string, hit bool) {
	if s == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	s.cacheLookups.WithLabelValues(namespace, result).Inc()
}

func (s *Service) ProviderRequest(resource string, err error) {
	if s == nil {
		return
	}
	s.providerRequests.WithLabelValues(resource, outcome(err)).Inc()
}

func (s *Service) ToolCall(tool string, err error) {
	if s == nil {
		return
	}
	s.toolCalls.WithLabelValues(tool, outcome(err)).Inc()
}

func (s *Service) AgentTurn(iterations int, err error) {
	if s == nil {
		return
	}
	s.agentTurns.WithLabelValues(outcome(err)).Inc()
	s.agentIterations.Observe(float64(iterations))
}

func (s *Service) LLMRequest(elapsed time.Duration) {
	if s == nil {
		return
	}
	s.llmLatency.Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
