// File: internal/metrics/metrics.go

// Package metrics defines the Prometheus metrics of the time-tracking API.
// All metrics register with the default registry on import and are served
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "urenregistratie"

// EntriesCreatedTotal counts time entries written.
var EntriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of time entries created.",
	},
)

// HoursLoggedTotal sums the durations of created entries.
var HoursLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hours_logged_total",
		Help:      "Total number of hours logged through created entries.",
	},
)

// EntryMutationsTotal counts updates and deletes of existing entries.
// Label:
//   - op: "update" or "delete"
var EntryMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_mutations_total",
		Help:      "Total number of time entries updated or deleted.",
	},
	[]string{"op"},
)

// PermissionDeniedTotal counts requests refused by the access policy.
// Label:
//   - action: the refused action (create, read, update, delete, change_role)
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of actions refused by the access policy.",
	},
	[]string{"action"},
)

// UsersDeletedTotal counts users removed by an admin, together with their entries.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted.",
	},
)

// HTTPRequestDuration observes request latency in seconds.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern, e.g. "/api/entries/:entry_id"
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
