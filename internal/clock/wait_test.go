package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitOrSignal_NilSignal(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) (context.Context, time.Duration)
		wantErr   error
		expectMin time.Duration
		expectMax time.Duration
	}{
		{
			name: "waits for duration when context active",
			setup: func(_ *testing.T) (context.Context, time.Duration) {
				return context.Background(), 15 * time.Millisecond
			},
			expectMin: 15 * time.Millisecond,
		},
		{
			name: "returns when context canceled",
			setup: func(t *testing.T) (context.Context, time.Duration) {
				ctx, cancel := context.WithCancel(context.Background())
				t.Cleanup(cancel)
				time.AfterFunc(5*time.Millisecond, cancel)
				return ctx, 200 * time.Millisecond
			},
			wantErr:   context.Canceled,
			expectMax: 60 * time.Millisecond,
		},
		{
			name: "already canceled context returns immediately",
			setup: func(_ *testing.T) (context.Context, time.Duration) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, time.Second
			},
			wantErr:   context.Canceled,
			expectMax: 20 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, duration := tt.setup(t)

			start := time.Now()
			err := WaitOrSignal(ctx, duration, nil)
			elapsed := time.Since(start)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("WaitOrSignal() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("WaitOrSignal() error = %v, want %v", err, tt.wantErr)
			}
			if tt.expectMin > 0 && elapsed < tt.expectMin {
				t.Fatalf("WaitOrSignal() returned too early: elapsed %v, expected at least %v", elapsed, tt.expectMin)
			}
			if tt.expectMax > 0 && elapsed > tt.expectMax {
				t.Fatalf("WaitOrSignal() returned too late: elapsed %v, expected under %v", elapsed, tt.expectMax)
			}
		})
	}
}

func TestWaitOrSignal_Signal(t *testing.T) {
	signal := make(chan struct{}, 1)
	time.AfterFunc(5*time.Millisecond, func() { signal <- struct{}{} })

	start := time.Now()
	if err := WaitOrSignal(context.Background(), time.Second, signal); err != nil {
		t.Fatalf("WaitOrSignal() unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("WaitOrSignal() ignored signal: elapsed %v", elapsed)
	}
}
