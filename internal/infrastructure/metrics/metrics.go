// Package metrics exposes estimate engine counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "meraki"
	subsystem = "estimator"
)

var (
	EstimatesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "estimates_created_total",
		Help:      "Estimates created, including duplicates and legacy imports.",
	})

	EstimatesFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "estimates_finalized_total",
		Help:      "Estimates transitioned from draft to finalized.",
	})

	EstimatesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "estimates_deleted_total",
		Help:      "Estimates removed by explicit user action.",
	})

	// DraftMutations is labelled by result: applied | dropped_finalized | rejected.
	DraftMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "draft_mutations_total",
		Help:      "Draft mutations by outcome.",
	}, []string{"result"})

	// LegacyMigrations is labelled by outcome: imported | discarded_empty.
	LegacyMigrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "legacy_migrations_total",
		Help:      "Legacy single-draft payloads consumed.",
	}, []string{"outcome"})

	// StoreErrors is labelled by operation: get | set | delete.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_errors_total",
		Help:      "Key/value store failures swallowed by the engine.",
	}, []string{"op"})
)

const (
	ResultApplied          = "applied"
	ResultDroppedFinalized = "dropped_finalized"
	ResultRejected         = "rejected"

	OutcomeImported       = "imported"
	OutcomeDiscardedEmpty = "discarded_empty"
)
