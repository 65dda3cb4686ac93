// Package metrics defines and registers the custom Prometheus metrics for
// the SafeGate API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safegate"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers both unknown email and
//     wrong password; the split is deliberately not observable anywhere)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: "cliente" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// AdminAccessDeniedTotal counts requests rejected by the admin gate.
// Label:
//   - reason: "not_admin", "unknown_user", or "revoked"
var AdminAccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_access_denied_total",
		Help:      "Total number of admin-gated requests rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Gate metrics ──────────────────────────────────────────────────────────────

// GateActionsTotal counts recorded gate commands.
// Label:
//   - acao: "abrir", "fechar", or "parar"
var GateActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_actions_total",
		Help:      "Total number of gate actions recorded, by action.",
	},
	[]string{"acao"},
)
