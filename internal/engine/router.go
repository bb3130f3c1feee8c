package engine

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/payments/internal/domain"
	"github.com/iho/payments/internal/infrastructure/metrics"
)

// DefaultQueueDepth bounds each lane's inbound queue. A full queue applies
// backpressure to the producer.
const DefaultQueueDepth = 32

// ErrDrained is returned when Drain is called more than once.
var ErrDrained = errors.New("router already drained")

// Config holds dependencies for the router.
type Config struct {
	Lanes      int
	QueueDepth int
	Reporter   Reporter
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
}

// Router fans transactions out over a fixed set of lanes. Every transaction
// for a given client lands on the same lane, so per-client ordering is the
// lane queue's FIFO order. Lanes share nothing: each worker owns a private
// client-to-account map that is read only after the worker has terminated.
type Router struct {
	lanes   []chan domain.Transaction
	results [][]*domain.Account
	group   *errgroup.Group
	drained bool
}

// NewRouter spawns one worker per lane. Lanes below 1 are clamped to 1.
func NewRouter(cfg Config) *Router {
	if cfg.Lanes < 1 {
		cfg.Lanes = 1
	}

	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = DefaultQueueDepth
	}

	if cfg.Reporter == nil {
		cfg.Reporter = NewLogReporter(cfg.Logger)
	}

	r := &Router{
		lanes:   make([]chan domain.Transaction, cfg.Lanes),
		results: make([][]*domain.Account, cfg.Lanes),
		group:   &errgroup.Group{},
	}

	for i := range r.lanes {
		lane := make(chan domain.Transaction, cfg.QueueDepth)
		r.lanes[i] = lane

		w := newWorker(i, lane, cfg.Reporter, cfg.Metrics, cfg.Logger)
		r.group.Go(func() error {
			r.results[w.id] = w.run()
			return nil
		})
	}

	return r
}

// laneFor is the routing function. Plain modulo: skew across clients
// produces skew across lanes, which is fine because ordering matters more
// than balance here.
func laneFor(client domain.ClientID, lanes int) int {
	return int(client) % lanes
}

// Submit routes tx to its lane. It blocks while the lane's queue is full;
// that is the backpressure path. Must not be called concurrently with or
// after Drain.
func (r *Router) Submit(ctx context.Context, tx domain.Transaction) error {
	lane := r.lanes[laneFor(tx.Client, len(r.lanes))]

	select {
	case lane <- tx:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain closes every lane, waits for each worker to finish its backlog and
// merges the per-lane account states into one slice. Order across lanes is
// unspecified.
func (r *Router) Drain() ([]*domain.Account, error) {
	if r.drained {
		return nil, ErrDrained
	}
	r.drained = true

	for _, lane := range r.lanes {
		close(lane)
	}

	if err := r.group.Wait(); err != nil {
		return nil, err
	}

	var accounts []*domain.Account
	for _, states := range r.results {
		accounts = append(accounts, states...)
	}

	return accounts, nil
}
