// Package metrics exposes Prometheus instruments for the engagement services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FollowToggles counts follow toggles by resulting state or failure kind.
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_follow_toggle_total",
		Help: "Follow toggles by outcome",
	}, []string{"outcome"})

	// LikeToggles counts like toggles by target kind and outcome.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_like_toggle_total",
		Help: "Like toggles by target kind and outcome",
	}, []string{"kind", "outcome"})

	// CommentWrites counts comment tree mutations.
	CommentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_comment_write_total",
		Help: "Comment tree writes by operation and outcome",
	}, []string{"operation", "outcome"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "social_operation_duration_seconds",
		Help:    "Service operation latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"operation"})
)

// ObserveSince records the elapsed time of operation.
func ObserveSince(operation string, start time.Time) {
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
