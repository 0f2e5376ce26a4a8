// Package metrics provides Prometheus instrumentation for pulse pipelines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for pulse components.
type Registry struct {
	// Subscription lifecycle
	SubscriptionsStarted *prometheus.CounterVec
	SubscriptionsActive  *prometheus.GaugeVec
	Completions          *prometheus.CounterVec

	// Value delivery
	ValuesDelivered *prometheus.CounterVec
	DecodeFailures  *prometheus.CounterVec

	// Executors
	ExecutorTasks      *prometheus.CounterVec
	ExecutorQueueDepth *prometheus.GaugeVec
}

// Completion outcome label values.
const (
	OutcomeFinished  = "finished"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
)

// DefaultRegistry is the default metrics registry used by pulse components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		SubscriptionsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "pipeline",
				Name:      "subscriptions_started_total",
				Help:      "Total number of subscriptions started",
			},
			[]string{"pipeline"},
		),

		SubscriptionsActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "pulse",
				Subsystem: "pipeline",
				Name:      "subscriptions_active",
				Help:      "Number of currently active subscriptions",
			},
			[]string{"pipeline"},
		),

		Completions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "pipeline",
				Name:      "completions_total",
				Help:      "Total number of terminal events by outcome",
			},
			[]string{"pipeline", "outcome"},
		),

		ValuesDelivered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "pipeline",
				Name:      "values_delivered_total",
				Help:      "Total number of values delivered to subscribers",
			},
			[]string{"pipeline"},
		),

		DecodeFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "pipeline",
				Name:      "decode_failures_total",
				Help:      "Total number of pipelines terminated by a decode failure",
			},
			[]string{"pipeline"},
		),

		ExecutorTasks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "executor",
				Name:      "tasks_total",
				Help:      "Total number of tasks run by executors",
			},
			[]string{"executor"},
		),

		ExecutorQueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "pulse",
				Subsystem: "executor",
				Name:      "queue_depth",
				Help:      "Current number of queued executor tasks",
			},
			[]string{"executor"},
		),
	}
}
