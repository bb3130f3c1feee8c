package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpadapter "github.com/iho/payments/internal/adapter/http"
	"github.com/iho/payments/internal/infrastructure/config"
	"github.com/iho/payments/internal/infrastructure/logger"
	"github.com/iho/payments/internal/infrastructure/metrics"
	"github.com/iho/payments/internal/usecase"
)

var (
	workers    int
	queueDepth int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "payments <transactions.csv>",
		Short: "Process a transaction stream into final account balances",
		Long: `Reads a CSV of deposits, withdrawals, disputes, resolves and chargebacks,
applies them per account through a sharded worker pool and writes the final
balance of every account to stdout. Diagnostics go to stderr.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], os.Stdout)
		},
	}

	rootCmd.Flags().IntVar(&workers, "workers", 0, "number of worker lanes (0 = one per CPU, overrides WORKER_LANES)")
	rootCmd.Flags().IntVar(&queueDepth, "queue-depth", 0, "lane queue capacity (overrides QUEUE_DEPTH)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, output io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().Str("run_id", ulid.Make().String()).Logger()

	lanes := resolveLanes(cfg, workers)
	depth := resolveQueueDepth(cfg, queueDepth)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	if cfg.MetricsAddr != "" {
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: httpadapter.NewRouter(registry)}
		defer server.Close()

		go func() {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("debug server listening")

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("debug server failed")
			}
		}()
	}

	input, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not open transactions file")
		return err
	}
	defer input.Close()

	uc := usecase.NewProcessUseCase(usecase.Config{
		Lanes:      lanes,
		QueueDepth: depth,
		Metrics:    m,
		Logger:     log,
	})

	log.Info().Int("lanes", lanes).Int("queue_depth", depth).Str("path", path).Msg("processing transactions")

	if err := uc.Run(ctx, input, output); err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}

	return nil
}

// resolveLanes prefers the --workers flag over the WORKER_LANES env var.
func resolveLanes(cfg *config.Config, flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}

	return cfg.Lanes()
}

// resolveQueueDepth prefers the --queue-depth flag over QUEUE_DEPTH.
func resolveQueueDepth(cfg *config.Config, flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}

	return cfg.QueueDepth
}
