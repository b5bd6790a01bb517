// Package metrics defines and registers all custom Prometheus metrics for
// the admin console. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so they are registered with the default registry
// at package load; expose them by mounting promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// BootstrapSourceTotal counts which fallback tier each collection was
// resolved from at startup.
// Labels:
//   - kind: "users", "organizations" or "orders"
//   - source: "external", "mirror" or "defaults"
var BootstrapSourceTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bootstrap_source_total",
		Help:      "Collections resolved at startup, labelled by fallback tier used.",
	},
	[]string{"kind", "source"},
)

// SnapshotPersistTotal counts background snapshot writes per store tier.
// Labels:
//   - store: "external" or "mirror"
//   - result: "ok" or "error"
var SnapshotPersistTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_persist_total",
		Help:      "Total number of snapshot persistence attempts, labelled by store and result.",
	},
	[]string{"store", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// EntityMutationsTotal counts successful create/update/delete operations.
// Labels:
//   - kind: "users", "organizations" or "orders"
//   - op: "create", "update" or "delete"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity mutations, labelled by kind and operation.",
	},
	[]string{"kind", "op"},
)
