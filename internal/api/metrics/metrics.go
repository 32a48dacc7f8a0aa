// Package metrics defines the custom Prometheus metrics of the clinic admin
// API. Metric names, labels and help strings live here and nowhere else.
//
// Metrics are registered with the default registry on package init via
// promauto and exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Access metrics ────────────────────────────────────────────────────────────

// AccessDecisionsTotal counts guard decisions on protected routes.
// Labels:
//   - outcome: the guard outcome (e.g. "granted", "missing_permission")
//   - fallback: "true" when a fallback handler served the request instead of a denial
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of access guard decisions, by outcome.",
	},
	[]string{"outcome", "fallback"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Clinical metrics ──────────────────────────────────────────────────────────

// PatientEventsTotal counts admissions and discharges.
// Label:
//   - event: "admit" or "discharge"
var PatientEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patient_events_total",
		Help:      "Total number of patient admissions and discharges.",
	},
	[]string{"event"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEntriesTotal counts audit entries by what happened to them.
// Label:
//   - result: "written", "failed" or "dropped"
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit entries, by persistence result.",
	},
	[]string{"result"},
)

// AuditWriteDuration measures a single audit insert.
var AuditWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_write_duration_seconds",
		Help:      "Duration of a single audit entry insert.",
		Buckets:   prometheus.DefBuckets,
	},
)
