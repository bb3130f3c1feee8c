package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	csvadapter "github.com/iho/payments/internal/adapter/csv"
	"github.com/iho/payments/internal/engine"
	"github.com/iho/payments/internal/infrastructure/metrics"
)

// ProcessUseCase runs the whole pipeline: CSV in, sharded processing,
// CSV out.
type ProcessUseCase struct {
	lanes      int
	queueDepth int
	reporter   engine.Reporter
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// Config holds dependencies for ProcessUseCase.
type Config struct {
	Lanes      int
	QueueDepth int
	Reporter   engine.Reporter
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
}

// NewProcessUseCase creates a new ProcessUseCase.
func NewProcessUseCase(cfg Config) *ProcessUseCase {
	return &ProcessUseCase{
		lanes:      cfg.Lanes,
		queueDepth: cfg.QueueDepth,
		reporter:   cfg.Reporter,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}
}

// Run streams transactions from input through the worker pool and writes
// the final account table to output. Malformed rows are logged and
// skipped; every other failure here is fatal to the run.
func (uc *ProcessUseCase) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	router := engine.NewRouter(engine.Config{
		Lanes:      uc.lanes,
		QueueDepth: uc.queueDepth,
		Reporter:   uc.reporter,
		Metrics:    uc.metrics,
		Logger:     uc.logger,
	})

	reader := csvadapter.NewReader(input)

	var submitted, skipped int
	for {
		tx, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var rowErr *csvadapter.RowError
		if errors.As(err, &rowErr) {
			uc.logger.Warn().Err(rowErr.Err).Int("line", rowErr.Line).Msg("skipping malformed row")

			if uc.metrics != nil {
				uc.metrics.RowsMalformed.Inc()
			}

			skipped++

			continue
		}

		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if err := router.Submit(ctx, tx); err != nil {
			return fmt.Errorf("submit transaction: %w", err)
		}

		submitted++
	}

	accounts, err := router.Drain()
	if err != nil {
		return fmt.Errorf("drain workers: %w", err)
	}

	uc.logger.Info().
		Int("submitted", submitted).
		Int("skipped", skipped).
		Int("accounts", len(accounts)).
		Msg("input exhausted")

	if err := csvadapter.Write(output, accounts); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
