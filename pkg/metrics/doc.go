// Package metrics provides Prometheus instrumentation for pulse pipelines
// and executors.
//
// All metrics live in the "pulse" namespace and are labeled with the
// pipeline name given via pipe.WithName. The DefaultRegistry registers on
// prometheus.DefaultRegisterer at init; pass a custom registry through
// pipe.WithRegistry or executor.Config to isolate metrics, or nil to
// disable them for a subscription.
//
// Exposed series:
//
//	pulse_pipeline_subscriptions_started_total{pipeline}
//	pulse_pipeline_subscriptions_active{pipeline}
//	pulse_pipeline_completions_total{pipeline,outcome}
//	pulse_pipeline_values_delivered_total{pipeline}
//	pulse_pipeline_decode_failures_total{pipeline}
//	pulse_executor_tasks_total{executor}
//	pulse_executor_queue_depth{executor}
package metrics
