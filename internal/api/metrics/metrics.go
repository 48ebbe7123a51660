// Package metrics defines and registers all custom Prometheus metrics for the
// placement portal API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "placement"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and signup attempts.
// Labels:
//   - kind: "login" or "signup"
//   - result: "success", "invalid", "superseded", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// SessionsRestoredTotal counts sessions restored from the persisted slot at
// initialization.
var SessionsRestoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_restored_total",
		Help:      "Total number of sessions restored from persistence on startup.",
	},
)

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivityEnqueued counts activity events accepted by the dispatcher.
// Label:
//   - action: "login", "signup", "logout", "navigate", or "go_back"
var ActivityEnqueued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_enqueued_total",
		Help:      "Total number of activity events enqueued, by action.",
	},
	[]string{"action"},
)

// ActivityDropped counts activity events dropped because a worker buffer
// was full.
var ActivityDropped = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity events dropped due to a full queue.",
	},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// NavigationDepth tracks the current depth of the navigation history stack.
var NavigationDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "navigation_depth",
		Help:      "Current depth of the navigation history stack.",
	},
)
