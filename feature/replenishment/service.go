package replenishment

import (
	"context"
	"time"

	"replenishment-service/core/ledger"
	"replenishment-service/core/reconcile"

	"go.uber.org/zap"
)

// Runner starts a reconciliation pass.
type Runner interface {
	RunCheck(ctx context.Context, threshold int) ([]reconcile.Order, error)
}

// Service exposes reconciliation and ledger operations to the HTTP surface.
type Service struct {
	runner      Runner
	store       ledger.Store
	threshold   int
	passTimeout time.Duration
	logger      *zap.Logger
}

// NewService creates a replenishment service. threshold is used whenever a caller
// does not supply its own.
func NewService(runner Runner, store ledger.Store, cfg reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		runner:      runner,
		store:       store,
		threshold:   cfg.Threshold,
		passTimeout: cfg.PassTimeout(),
		logger:      logger,
	}
}

// Threshold returns the configured threshold.
func (s *Service) Threshold() int {
	return s.threshold
}

// RunCheck runs one pass bounded by the configured pass timeout.
func (s *Service) RunCheck(ctx context.Context, threshold int) ([]reconcile.Order, error) {
	if s.passTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.passTimeout)
		defer cancel()
	}
	return s.runner.RunCheck(ctx, threshold)
}

// ListOrders returns every recorded order, oldest first.
func (s *Service) ListOrders(ctx context.Context) ([]reconcile.Order, error) {
	return s.store.ListAll(ctx)
}

// ClearOrders removes every recorded order and returns how many were removed.
func (s *Service) ClearOrders(ctx context.Context) (int64, error) {
	return s.store.ClearAll(ctx)
}
