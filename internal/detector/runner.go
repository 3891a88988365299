package detector

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/huangsam/posecoach/schema"
)

// Runner drives a Detector at a fixed cadence after an initial warm-up
// delay. Detection calls are asynchronous; a busy flag guards re-entrancy
// and a tick is skipped while the previous call is still in flight. There
// is no retry policy: a failed detection simply waits for the next tick,
// and an exhausted capture stops the loop cleanly.
type Runner struct {
	det      Detector
	interval time.Duration
	warmup   time.Duration

	onFrame func(frame *schema.Frame)
	onError func(err error)

	busy     atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// NewRunner wires a detection loop. onFrame receives every frame,
// including frames with zero poses (the no-detection outcome belongs to
// the consumer). onError may be nil.
func NewRunner(det Detector, interval, warmup time.Duration, onFrame func(frame *schema.Frame), onError func(err error)) *Runner {
	return &Runner{
		det:      det,
		interval: interval,
		warmup:   warmup,
		onFrame:  onFrame,
		onError:  onError,
		done:     make(chan struct{}),
	}
}

// Run blocks until the context is cancelled or the detector reports
// ErrExhausted. The warm-up delay runs once before the first tick.
func (r *Runner) Run(ctx context.Context) error {
	if r.warmup > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(r.warmup):
		}
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.done:
			return nil
		case <-ticker.C:
			if !r.busy.CompareAndSwap(false, true) {
				continue // previous detection still in flight; skip this cycle
			}
			go r.detectOnce(ctx)
		}
	}
}

func (r *Runner) detectOnce(ctx context.Context) {
	defer r.busy.Store(false)

	frame, err := r.det.Detect(ctx)
	if err != nil {
		if errors.Is(err, ErrExhausted) || errors.Is(err, context.Canceled) {
			r.stop()
			return
		}
		if r.onError != nil {
			r.onError(err)
		}
		return
	}
	r.onFrame(frame)
}

func (r *Runner) stop() {
	r.stopOnce.Do(func() { close(r.done) })
}
