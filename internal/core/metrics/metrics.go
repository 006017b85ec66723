// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeDropped  = "dropped"
)

var (
	// LiveMessages counts live channel traffic by direction, type and outcome.
	LiveMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dockyard",
		Subsystem: "live",
		Name:      "messages_total",
		Help:      "Live update messages handled, by direction, type and outcome.",
	}, []string{"direction", "type", "outcome"})

	// DockAPICalls counts REST calls against the dock backend.
	DockAPICalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dockyard",
		Subsystem: "dock_api",
		Name:      "calls_total",
		Help:      "Dock API calls, by operation and outcome.",
	}, []string{"operation", "outcome"})

	// ReconciliationDropped counts rows excluded or unmatched during reconciliation.
	ReconciliationDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dockyard",
		Subsystem: "reconciliation",
		Name:      "rows_dropped_total",
		Help:      "Reconciliation rows skipped, by reason.",
	}, []string{"reason"})

	// RejectedActions counts store actions that left the state unchanged.
	RejectedActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dockyard",
		Subsystem: "store",
		Name:      "rejected_actions_total",
		Help:      "Actions rejected by the reducer, by action.",
	}, []string{"action"})
)
