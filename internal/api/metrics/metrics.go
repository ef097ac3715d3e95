// Package metrics defines and registers all custom Prometheus metrics for the
// EZElectronics backend. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics registered through promauto attach to the default registry at
// package initialisation; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ezelectronics"

// AccountOpsTotal counts account management operations by outcome.
// Labels:
//   - op: "create", "update", "delete", "delete_all"
//   - outcome: "ok" or "error"
var AccountOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_ops_total",
		Help:      "Total number of account management operations, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)
