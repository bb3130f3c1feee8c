package engine

import (
	"github.com/rs/zerolog"

	"github.com/iho/payments/internal/domain"
	"github.com/iho/payments/internal/infrastructure/metrics"
)

// worker is one lane. It exclusively owns every account whose client id
// routes to it and processes the lane's transactions strictly in arrival
// order.
type worker struct {
	id       int
	inbox    <-chan domain.Transaction
	accounts map[domain.ClientID]*domain.Account
	reporter Reporter
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func newWorker(id int, inbox <-chan domain.Transaction, reporter Reporter, m *metrics.Metrics, logger zerolog.Logger) *worker {
	return &worker{
		id:       id,
		inbox:    inbox,
		accounts: make(map[domain.ClientID]*domain.Account),
		reporter: reporter,
		metrics:  m,
		logger:   logger.With().Int("lane", id).Logger(),
	}
}

// run consumes the inbox until it is closed, then hands back the lane's
// accounts. A rejected transaction is reported and dropped; the account is
// left exactly as it was before the attempt.
func (w *worker) run() []*domain.Account {
	for tx := range w.inbox {
		account, ok := w.accounts[tx.Client]
		if !ok {
			account = domain.NewAccount(tx.Client)
			w.accounts[tx.Client] = account

			if w.metrics != nil {
				w.metrics.AccountsCreated.Inc()
			}
		}

		wasLocked := account.Locked

		if err := account.Apply(tx); err != nil {
			w.reporter.Rejected(tx, err)

			if w.metrics != nil {
				w.metrics.TransactionsRejected.WithLabelValues(domain.Reason(err)).Inc()
			}

			continue
		}

		if w.metrics != nil {
			w.metrics.TransactionsProcessed.WithLabelValues(string(tx.Kind)).Inc()

			if account.Locked && !wasLocked {
				w.metrics.AccountsLocked.Inc()
			}
		}
	}

	w.logger.Debug().Int("accounts", len(w.accounts)).Msg("lane drained")

	states := make([]*domain.Account, 0, len(w.accounts))
	for _, account := range w.accounts {
		states = append(states, account)
	}

	return states
}
