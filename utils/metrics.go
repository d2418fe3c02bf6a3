package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Gamification Metrics
	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_completions_total",
			Help: "Total number of task completions by entity type",
		},
		[]string{"type"}, // habit, daily, todo
	)

	CoinsAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coins_awarded_total",
			Help: "Total coins awarded by entity type",
		},
		[]string{"type"},
	)

	LevelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "level_ups_total",
			Help: "Total number of level-up events",
		},
	)

	// Assistant Metrics
	AssistantCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_commands_total",
			Help: "Total number of interpreted assistant commands",
		},
		[]string{"type"},
	)

	// Daily Reset Metrics
	ResetRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_reset_runs_total",
			Help: "Total number of daily reset runs",
		},
		[]string{"status"}, // completed, failed, skipped
	)

	ResetUsersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "daily_reset_users_total",
			Help: "Total number of users reset",
		},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component and kind",
		},
		[]string{"component", "kind"},
	)
)

// TrackDBOperation returns a timer observing the db operation histogram
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackCompletion increments the completion counter for an entity type
func TrackCompletion(entityType string) {
	CompletionsTotal.WithLabelValues(entityType).Inc()
}

// TrackCoinsAwarded adds awarded coins to the per-type counter
func TrackCoinsAwarded(entityType string, amount int) {
	CoinsAwardedTotal.WithLabelValues(entityType).Add(float64(amount))
}

// TrackError increments the error counter
func TrackError(component, kind string) {
	ErrorsTotal.WithLabelValues(component, kind).Inc()
}
