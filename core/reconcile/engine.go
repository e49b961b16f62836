package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"replenishment-service/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source provides point-in-time inventory snapshots.
type Source interface {
	// FetchSnapshot returns every inventory item in upstream order.
	FetchSnapshot(ctx context.Context) ([]InventoryItem, error)
}

// Ledger records replenishment orders. Each insert is atomic on its own;
// there is no transaction spanning several inserts.
type Ledger interface {
	Insert(ctx context.Context, draft OrderDraft) (Order, error)
}

// Archiver keeps a copy of the snapshot a pass was decided on.
type Archiver interface {
	Archive(ctx context.Context, passID string, items []InventoryItem) error
}

// Recorder observes finished passes.
type Recorder interface {
	ObservePass(result PassResult)
}

// DefaultArchiveTimeout bounds one snapshot upload when WithArchiveTimeout is not given.
const DefaultArchiveTimeout = 30 * time.Second

// Engine runs reconciliation passes. It holds no state between passes and does not
// serialize concurrent passes.
type Engine struct {
	source   Source
	ledger   Ledger
	logger   *zap.Logger
	archiver Archiver
	recorder Recorder

	archiveTimeout time.Duration
	archives       sync.WaitGroup
}

// Option configures optional Engine collaborators.
type Option func(*Engine)

// WithArchiver archives every fetched snapshot in the background. Archive failures
// and slow uploads never affect the pass.
func WithArchiver(a Archiver) Option {
	return func(e *Engine) { e.archiver = a }
}

// WithArchiveTimeout bounds each snapshot upload. Non-positive values keep the default.
func WithArchiveTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.archiveTimeout = d
		}
	}
}

// WithRecorder reports every finished pass to r.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// NewEngine creates a reconciliation engine.
func NewEngine(source Source, ledger Ledger, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		source:         source,
		ledger:         ledger,
		logger:         logger,
		archiveTimeout: DefaultArchiveTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan returns one draft per item whose quantity is strictly below threshold,
// preserving snapshot order.
func Plan(items []InventoryItem, threshold int) []OrderDraft {
	drafts := make([]OrderDraft, 0)
	for _, item := range items {
		if item.Quantity >= threshold {
			continue
		}
		drafts = append(drafts, OrderDraft{
			ItemID:          item.ID,
			SKU:             item.SKU,
			QuantityToOrder: threshold - item.Quantity,
		})
	}
	return drafts
}

// RunCheck executes one reconciliation pass: fetch the snapshot, select the items
// below threshold and record one order per item.
//
// Snapshot failures are returned unchanged and create no orders. The first ledger
// failure aborts the pass; orders inserted before it stay in the ledger. Orders are
// not deduplicated across passes, so re-running over an unchanged snapshot records
// the same shortfall again.
func (e *Engine) RunCheck(ctx context.Context, threshold int) ([]Order, error) {
	start := time.Now()
	result := PassResult{
		PassID:    uuid.NewString(),
		Threshold: threshold,
	}
	l := logger.WithPass(e.logger, result.PassID)
	l.Info("Reconciliation pass started", zap.Int("threshold", threshold))

	orders, err := e.run(ctx, l, &result)

	result.Created = len(orders)
	result.Elapsed = time.Since(start)
	result.Kind = KindOf(err)
	if e.recorder != nil {
		e.recorder.ObservePass(result)
	}

	if err != nil {
		l.Error("Reconciliation pass failed",
			zap.String("kind", string(result.Kind)),
			zap.Int("scanned", result.Scanned),
			zap.Int("created_before_failure", result.Created),
			zap.Error(err),
		)
		return nil, err
	}

	l.Info("Reconciliation pass completed",
		zap.Int("scanned", result.Scanned),
		zap.Int("qualifying", result.Qualifying),
		zap.Int("created", result.Created),
		zap.Duration("elapsed", result.Elapsed),
	)
	return orders, nil
}

func (e *Engine) run(ctx context.Context, l *zap.Logger, result *PassResult) ([]Order, error) {
	items, err := e.source.FetchSnapshot(ctx)
	if err != nil {
		return nil, SourceError(err)
	}
	result.Scanned = len(items)

	if e.archiver != nil {
		e.archive(ctx, l, result.PassID, items)
	}

	drafts := Plan(items, result.Threshold)
	result.Qualifying = len(drafts)

	created := make([]Order, 0, len(drafts))
	for _, draft := range drafts {
		order, err := e.ledger.Insert(ctx, draft)
		if err != nil {
			if KindOf(err) != KindStorageUnavailable {
				err = fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
			}
			return created, fmt.Errorf("insert order for item %s: %w", draft.ItemID, err)
		}
		created = append(created, order)
	}

	return created, nil
}

// archive uploads the snapshot on its own goroutine. The upload keeps the caller's
// context values but neither its cancellation nor its deadline.
func (e *Engine) archive(ctx context.Context, l *zap.Logger, passID string, items []InventoryItem) {
	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.archiveTimeout)
	e.archives.Add(1)
	go func() {
		defer e.archives.Done()
		defer cancel()
		if err := e.archiver.Archive(archiveCtx, passID, items); err != nil {
			l.Warn("Snapshot archive failed", zap.Error(err))
		}
	}()
}

// Wait blocks until every in-flight snapshot upload has finished.
func (e *Engine) Wait() {
	e.archives.Wait()
}
