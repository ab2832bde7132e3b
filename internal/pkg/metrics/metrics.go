// Package metrics exposes Prometheus collectors for the dispatch loop.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the registrar's Prometheus collectors.
type Metrics struct {
	registry      *prometheus.Registry
	ActionsTotal  *prometheus.CounterVec
	SaveFailures  prometheus.Counter
	SnapshotSaves prometheus.Counter
}

// New creates and registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registrar_actions_total",
			Help: "Dispatched actions by kind.",
		}, []string{"kind"}),
		SaveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "registrar_save_failures_total",
			Help: "Snapshot save attempts that failed.",
		}),
		SnapshotSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "registrar_snapshot_saves_total",
			Help: "Snapshot save attempts.",
		}),
	}
	m.registry.MustRegister(m.ActionsTotal, m.SaveFailures, m.SnapshotSaves)
	return m
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
