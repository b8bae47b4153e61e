// Package tracker polls the status API for one transaction and keeps a monotonic view of its progress.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/txprogress-backend/internal/clock"
	"github.com/goodnatureofminers/txprogress-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultPollInterval is the delay between polls.
	DefaultPollInterval = 6 * time.Second
	// DefaultMaxBackoffInterval caps the delay between polls while they keep failing.
	DefaultMaxBackoffInterval = time.Minute
)

// Config configures a Tracker.
type Config struct {
	PollInterval time.Duration
	// Backoff stretches the interval exponentially while consecutive polls fail.
	Backoff            bool
	MaxBackoffInterval time.Duration
	// Observer is called with every new snapshot, never concurrently and never out of order.
	Observer func(Snapshot)
}

// Tracker runs at most one tracking session at a time.
type Tracker struct {
	client     StatusClient
	metrics    Metrics
	logger     *zap.Logger
	observer   func(Snapshot)
	interval   time.Duration
	newBackOff func() backoff.BackOff
	wait       func(ctx context.Context, d time.Duration, signal <-chan struct{}) error
	newID      func() string

	lifecycle sync.Mutex
	wg        sync.WaitGroup

	mu      sync.Mutex
	session *session
	version uint64

	notifyMu sync.Mutex
	notified uint64
}

// New builds a Tracker.
func New(client StatusClient, metrics Metrics, logger *zap.Logger, cfg Config) (*Tracker, error) {
	if client == nil {
		return nil, errors.New("status client is required")
	}
	if metrics == nil {
		return nil, errors.New("tracker metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	t := &Tracker{
		client:   client,
		metrics:  metrics,
		logger:   logger,
		observer: cfg.Observer,
		interval: interval,
		wait:     clock.WaitOrSignal,
		newID:    uuid.NewString,
	}
	if cfg.Backoff {
		maxInterval := cfg.MaxBackoffInterval
		if maxInterval < interval {
			maxInterval = max(DefaultMaxBackoffInterval, interval)
		}
		initial := min(2*interval, maxInterval)
		t.newBackOff = func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(initial),
				backoff.WithMaxInterval(maxInterval),
				backoff.WithMaxElapsedTime(0),
			)
		}
	}
	return t, nil
}

// Start begins tracking txHash against target, replacing any previous session. The first poll
// is issued immediately.
func (t *Tracker) Start(ctx context.Context, txHash string, target uint64) error {
	txHash = strings.TrimSpace(txHash)
	if txHash == "" {
		return errors.New("tx hash is required")
	}
	if target == 0 {
		return errors.New("target confirmations must be positive")
	}

	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()
	t.stop()

	s := newSession(ctx, t.newID(), txHash, target)
	t.mu.Lock()
	t.session = s
	snap := t.snapshotLocked(s)
	t.mu.Unlock()

	t.logger.Info("tracking started",
		zap.String("session", s.id),
		zap.String("tx_hash", txHash),
		zap.Uint64("target", target),
		zap.Duration("interval", t.interval),
	)
	t.notify(snap)

	t.wg.Add(1)
	go t.run(s)
	return nil
}

// Stop cancels the active session and waits for its polls to return. It is safe to call
// repeatedly and on an idle tracker.
func (t *Tracker) Stop() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()
	t.stop()
}

func (t *Tracker) stop() {
	t.mu.Lock()
	s := t.session
	t.session = nil
	var snap Snapshot
	if s != nil {
		snap = t.idleSnapshotLocked()
	}
	t.mu.Unlock()
	if s == nil {
		return
	}

	s.cancel()
	t.wg.Wait()
	t.logger.Info("tracking stopped", zap.String("session", s.id))
	t.notify(snap)
}

// Refresh requests an immediate poll of the active session.
func (t *Tracker) Refresh() {
	t.mu.Lock()
	s := t.session
	t.mu.Unlock()
	if s == nil {
		return
	}
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Done returns a channel closed when the active session reaches the terminal state. It returns
// nil when no session is active.
func (t *Tracker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil {
		return nil
	}
	return t.session.done
}

// Snapshot returns the current observable state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil {
		return Snapshot{Version: t.version, State: StateIdle}
	}
	return t.session.snapshot(t.version)
}

func (t *Tracker) run(s *session) {
	defer t.wg.Done()

	var bo backoff.BackOff
	if t.newBackOff != nil {
		bo = t.newBackOff()
	}

	for {
		t.wg.Add(1)
		go t.poll(s)

		if err := t.wait(s.ctx, t.nextDelay(s, bo), s.refresh); err != nil {
			return
		}
	}
}

func (t *Tracker) nextDelay(s *session, bo backoff.BackOff) time.Duration {
	if bo == nil {
		return t.interval
	}
	t.mu.Lock()
	failures := s.failures
	t.mu.Unlock()

	if failures == 0 {
		bo.Reset()
		return t.interval
	}
	d := bo.NextBackOff()
	if d == backoff.Stop {
		return t.interval
	}
	return d
}

func (t *Tracker) poll(s *session) {
	defer t.wg.Done()

	started := time.Now()
	report, err := t.client.Fetch(s.ctx, s.txHash, s.target)
	if s.ctx.Err() != nil {
		// Session stopped, restarted or already terminal.
		return
	}
	t.metrics.ObservePoll(err, started)

	if err == nil {
		err = checkReport(report)
	}

	t.mu.Lock()
	if t.session != s {
		t.mu.Unlock()
		return
	}
	if err != nil {
		s.fail(err)
		failures := s.failures
		snap := t.snapshotLocked(s)
		t.mu.Unlock()

		t.logger.Warn("status poll failed", zap.String("session", s.id), zap.Int("failures", failures), zap.Error(err))
		t.notify(snap)
		return
	}

	recovered := s.lastErr != nil
	adopted := s.apply(report)
	terminal := s.state == StateTerminal
	var snap Snapshot
	if adopted || recovered {
		snap = t.snapshotLocked(s)
	}
	t.mu.Unlock()

	t.metrics.ObserveMerge(adopted)
	if adopted {
		t.logger.Debug("report adopted",
			zap.String("session", s.id),
			zap.String("status", string(report.Status)),
			zap.Uint64("confirmations", report.Confirmations),
		)
	} else {
		t.logger.Debug("stale report discarded",
			zap.String("session", s.id),
			zap.Uint64("confirmations", report.Confirmations),
		)
	}
	if adopted || recovered {
		t.notify(snap)
	}
	if terminal && adopted {
		t.logger.Info("transaction confirmed", zap.String("session", s.id), zap.String("tx_hash", s.txHash))
		s.finish()
	}
}

func checkReport(report *model.TxStatusReport) error {
	if report == nil {
		return errors.New("empty status report")
	}
	if err := report.Validate(); err != nil {
		return fmt.Errorf("invalid status report: %w", err)
	}
	return nil
}

// snapshotLocked bumps the version and captures s. Callers hold t.mu.
func (t *Tracker) snapshotLocked(s *session) Snapshot {
	t.version++
	return s.snapshot(t.version)
}

func (t *Tracker) idleSnapshotLocked() Snapshot {
	t.version++
	return Snapshot{Version: t.version, State: StateIdle}
}

func (t *Tracker) notify(snap Snapshot) {
	if t.observer == nil {
		return
	}
	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()
	if snap.Version <= t.notified {
		return
	}
	t.notified = snap.Version
	t.observer(snap)
}
