package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"replenishment-service/core/reconcile"

	"go.uber.org/zap"
)

// Runner starts one reconciliation pass.
type Runner interface {
	RunCheck(ctx context.Context, threshold int) ([]reconcile.Order, error)
}

// TriggerConfig holds configuration for the periodic trigger.
type TriggerConfig struct {
	// Interval is the time between two pass starts.
	Interval time.Duration
	// Threshold is handed to every pass.
	Threshold int
	// PassTimeout bounds a single pass. Zero leaves passes unbounded.
	PassTimeout time.Duration
}

// Trigger runs reconciliation passes on a fixed interval. It does not coordinate
// with passes started elsewhere (HTTP, CLI); those may overlap with scheduled ones.
type Trigger struct {
	config TriggerConfig
	runner Runner
	logger *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewTrigger creates a periodic trigger.
func NewTrigger(config TriggerConfig, runner Runner, logger *zap.Logger) *Trigger {
	return &Trigger{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Start launches the trigger loop. Calling Start on a running trigger is a no-op.
func (t *Trigger) Start(ctx context.Context) error {
	if t.config.Interval <= 0 {
		return errors.New("trigger interval must be positive")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isRunning {
		return nil
	}
	t.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go t.runLoop(ctx)

	t.logger.Info("Scheduled reconciliation started",
		zap.Duration("interval", t.config.Interval),
		zap.Int("threshold", t.config.Threshold),
	)
	return nil
}

// Stop cancels the loop, including an in-flight pass, and waits for it to exit.
func (t *Trigger) Stop() {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return
	}
	t.isRunning = false
	cancel := t.cancel
	t.mu.Unlock()

	cancel()
	t.wg.Wait()
	t.logger.Info("Scheduled reconciliation stopped")
}

// IsRunning reports whether the loop is active.
func (t *Trigger) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isRunning
}

func (t *Trigger) runLoop(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.runOnce(ctx)
		}
	}
}

func (t *Trigger) runOnce(ctx context.Context) {
	if t.config.PassTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.PassTimeout)
		defer cancel()
	}

	orders, err := t.runner.RunCheck(ctx, t.config.Threshold)
	if err != nil {
		// The engine already logged the failure with its pass id.
		t.logger.Warn("Scheduled reconciliation pass failed",
			zap.String("kind", string(reconcile.KindOf(err))),
		)
		return
	}
	t.logger.Debug("Scheduled reconciliation pass finished", zap.Int("created", len(orders)))
}
