// Package metrics defines and registers all custom Prometheus metrics for the
// wellness portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wellness"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts accounts created through registration.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// SessionActive is 1 while an identity is active, 0 otherwise.
var SessionActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_active",
		Help:      "Whether an identity is currently active (1) or not (0).",
	},
)

// EnrollmentUpdatesTotal counts enrollment-set mutations.
// Label:
//   - action: "add" or "remove"
var EnrollmentUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollment_updates_total",
		Help:      "Total number of enrollment mutations applied to the active identity.",
	},
	[]string{"action"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogMutationsTotal counts write operations on the catalog collections.
// Labels:
//   - entity: "resource" or "program"
//   - op: "add", "replace", "status", "delete", "progress"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog write operations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ResourceViewsTotal counts recorded resource views.
var ResourceViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_views_total",
		Help:      "Total number of resource views recorded.",
	},
)

// ViewQueueDepth tracks the number of view events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Insights metrics ──────────────────────────────────────────────────────────

// InsightFetchDuration measures how long a simulated façade read takes,
// artificial latency included.
// Label:
//   - view: "wellness", "appointments", "platform", "top_resources"
var InsightFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "insight_fetch_duration_seconds",
		Help:      "Duration of simulated data-fetch façade reads.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"view"},
)
