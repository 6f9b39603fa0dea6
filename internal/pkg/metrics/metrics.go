// Package metrics defines and registers the custom Prometheus metrics of the
// booking service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Session metrics ───────────────────────────────────────────────────────────

// IdentityOperationsTotal counts identity operations by outcome.
// Labels:
//   - operation: "login", "register", "demo_login", "logout"
//   - outcome: "success" or "failure"
var IdentityOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_operations_total",
		Help:      "Total number of identity operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// SessionStorageReadFailuresTotal counts durable session records that could not be read
// and were treated as anonymous.
var SessionStorageReadFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_storage_read_failures_total",
		Help:      "Total number of unreadable session records degraded to anonymous.",
	},
)

// GuardDecisionsTotal counts access guard decisions.
// Label:
//   - decision: "allowed" or "redirected"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of protected-view navigation decisions.",
	},
	[]string{"decision"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts notifications handed to the side channel.
// Labels:
//   - kind: "success", "error", "info"
//   - result: "delivered" or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications, by kind and delivery result.",
	},
	[]string{"kind", "result"},
)

// NotificationQueueDepth tracks pending notifications per dispatcher worker.
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Registry metrics ──────────────────────────────────────────────────────────

// PaymentDefaultChangesTotal counts changes of the default payment method.
// Label:
//   - reason: "explicit", "first_added", "promoted", "cleared"
var PaymentDefaultChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_default_changes_total",
		Help:      "Total number of default payment method changes, by reason.",
	},
	[]string{"reason"},
)

// FavoritesToggledTotal counts favorite toggles.
// Label:
//   - action: "added" or "removed"
var FavoritesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_toggled_total",
		Help:      "Total number of favorite additions and removals.",
	},
	[]string{"action"},
)
