package ethereum

import (
	"context"
	"encoding/json"
	"time"
)

// ObservedCaller wraps a Caller with metrics instrumentation.
type ObservedCaller struct {
	caller  Caller
	metrics CallMetrics
}

// NewObservedCaller constructs an instrumented Caller.
func NewObservedCaller(caller Caller, metrics CallMetrics) *ObservedCaller {
	return &ObservedCaller{
		caller:  caller,
		metrics: metrics,
	}
}

// Call forwards the call and records its outcome under the method name.
func (c *ObservedCaller) Call(ctx context.Context, method string, args ...any) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()
	return c.caller.Call(ctx, method, args...)
}
