package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Pipeline metrics
	TransactionsProcessed *prometheus.CounterVec
	TransactionsRejected  *prometheus.CounterVec
	RowsMalformed         prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter
	AccountsLocked  prometheus.Counter
}

// New creates all metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_transactions_processed_total",
				Help: "Total transactions applied successfully by kind",
			},
			[]string{"kind"},
		),
		TransactionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_transactions_rejected_total",
				Help: "Total transactions rejected by reason",
			},
			[]string{"reason"},
		),
		RowsMalformed: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_rows_malformed_total",
			Help: "Total input rows that could not be parsed",
		}),

		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_accounts_created_total",
			Help: "Total accounts lazily created during the run",
		}),
		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_accounts_locked_total",
			Help: "Total accounts locked by a chargeback",
		}),
	}
}
