package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/metrics"
	"github.com/goodnatureofminers/txprogress-backend/internal/render"
	"github.com/goodnatureofminers/txprogress-backend/internal/statusclient"
	"github.com/goodnatureofminers/txprogress-backend/internal/tracker"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	APIURL              string        `long:"api-url" env:"TX_TRACKER_API_URL" description:"status API base URL" default:"http://localhost:4000"`
	TxHash              string        `long:"tx-hash" env:"TX_TRACKER_TX_HASH" description:"transaction hash to track" required:"true"`
	TargetConfirmations uint64        `long:"target-confirmations" env:"TX_TRACKER_TARGET_CONFIRMATIONS" description:"confirmations considered final" default:"50"`
	PollInterval        time.Duration `long:"poll-interval" env:"TX_TRACKER_POLL_INTERVAL" description:"delay between polls" default:"6s"`
	RequestTimeout      time.Duration `long:"request-timeout" env:"TX_TRACKER_REQUEST_TIMEOUT" description:"timeout for a single status request" default:"30s"`
	Backoff             bool          `long:"backoff" env:"TX_TRACKER_BACKOFF" description:"back off exponentially while polls fail"`
	MaxBackoffInterval  time.Duration `long:"backoff-max-interval" env:"TX_TRACKER_BACKOFF_MAX_INTERVAL" description:"longest delay between failing polls" default:"1m"`
	MetricsAddr         string        `long:"metrics-addr" env:"TX_TRACKER_METRICS_ADDR" description:"address for metrics server, empty disables it"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env file", zap.Error(err))
	}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("tx tracker failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger, out io.Writer) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	client, err := statusclient.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init status client: %w", err)
	}

	t, err := tracker.New(client, metrics.NewTracker(), logger.Named("tracker"), tracker.Config{
		PollInterval:       cfg.PollInterval,
		Backoff:            cfg.Backoff,
		MaxBackoffInterval: cfg.MaxBackoffInterval,
		Observer: func(s tracker.Snapshot) {
			if s.State == tracker.StateIdle {
				return
			}
			_, _ = fmt.Fprintln(out, render.Snapshot(s, cfg.PollInterval))
		},
	})
	if err != nil {
		return fmt.Errorf("init tracker: %w", err)
	}
	if err := t.Start(ctx, cfg.TxHash, cfg.TargetConfirmations); err != nil {
		return fmt.Errorf("start tracking: %w", err)
	}
	defer t.Stop()

	refresh := make(chan os.Signal, 1)
	signal.Notify(refresh, syscall.SIGUSR1)
	defer signal.Stop(refresh)

	done := t.Done()
	for {
		select {
		case <-ctx.Done():
			logger.Info("tracking interrupted", zap.String("tx_hash", cfg.TxHash))
			return nil
		case <-done:
			return nil
		case <-refresh:
			logger.Info("refresh requested")
			t.Refresh()
		}
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
