package tracker

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
)

// State is the lifecycle stage of a tracking session.
type State string

var (
	// StateIdle means no transaction is tracked.
	StateIdle State = "idle"
	// StatePolling means the session polls on its interval.
	StatePolling State = "polling"
	// StateTerminal means a confirmed report was adopted and polling stopped.
	StateTerminal State = "terminal"
)

// Snapshot is the observable state of the tracker. Report must be treated as read-only.
type Snapshot struct {
	Version   uint64
	SessionID string
	TxHash    string
	Target    uint64
	State     State
	Report    *model.TxStatusReport
	LastErr   error
	Failing   bool
}

// session is one tracked transaction. Mutable fields are guarded by Tracker.mu.
type session struct {
	id     string
	txHash string
	target uint64

	ctx      context.Context
	cancel   context.CancelFunc
	refresh  chan struct{}
	done     chan struct{}
	doneOnce sync.Once

	state    State
	current  *model.TxStatusReport
	lastErr  error
	failures int
}

func newSession(parent context.Context, id, txHash string, target uint64) *session {
	ctx, cancel := context.WithCancel(parent)
	return &session{
		id:      id,
		txHash:  txHash,
		target:  target,
		ctx:     ctx,
		cancel:  cancel,
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
		state:   StatePolling,
	}
}

// apply merges a successful response and reports whether it was adopted. A success clears the
// recorded error either way.
func (s *session) apply(next *model.TxStatusReport) bool {
	s.failures = 0
	s.lastErr = nil
	merged, adopted := Merge(s.current, next)
	s.current = merged
	if adopted && merged.Status.Terminal() {
		s.state = StateTerminal
	}
	return adopted
}

// fail records a failed poll without touching the current report.
func (s *session) fail(err error) {
	s.lastErr = err
	s.failures++
}

func (s *session) snapshot(version uint64) Snapshot {
	return Snapshot{
		Version:   version,
		SessionID: s.id,
		TxHash:    s.txHash,
		Target:    s.target,
		State:     s.state,
		Report:    s.current,
		LastErr:   s.lastErr,
		Failing:   s.failures > 0,
	}
}

func (s *session) finish() {
	s.doneOnce.Do(func() {
		s.cancel()
		close(s.done)
	})
}
