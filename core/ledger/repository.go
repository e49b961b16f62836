package ledger

import (
	"context"
	"errors"
	"time"

	"replenishment-service/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errNotConfigured = errors.New("ledger database not configured")

// Store is the full ledger surface: append, list and bulk clear.
type Store interface {
	reconcile.Ledger
	// ListAll returns every order in creation order.
	ListAll(ctx context.Context) ([]reconcile.Order, error)
	// ClearAll deletes every order and returns how many were deleted.
	ClearAll(ctx context.Context) (int64, error)
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
}

// Repository is the GORM-backed ledger.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a ledger repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Migrate creates or updates the orders table.
func (r *Repository) Migrate(ctx context.Context) error {
	if r.db == nil {
		return reconcile.Wrap(reconcile.ErrStorageUnavailable, "migrate: %w", errNotConfigured)
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&OrderRecord{}); err != nil {
		return reconcile.Wrap(reconcile.ErrStorageUnavailable, "migrate: %w", err)
	}
	return nil
}

// Insert records a new order and assigns its identifier.
// Identifiers are UUIDv7 so they sort in creation order and are never reused.
func (r *Repository) Insert(ctx context.Context, draft reconcile.OrderDraft) (reconcile.Order, error) {
	if r.db == nil {
		return reconcile.Order{}, reconcile.Wrap(reconcile.ErrStorageUnavailable, "insert: %w", errNotConfigured)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return reconcile.Order{}, reconcile.Wrap(reconcile.ErrStorageUnavailable, "generate order id: %w", err)
	}

	record := OrderRecord{
		ID:              id.String(),
		ItemID:          draft.ItemID,
		SKU:             draft.SKU,
		QuantityToOrder: draft.QuantityToOrder,
		CreatedAt:       r.now(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return reconcile.Order{}, reconcile.Wrap(reconcile.ErrStorageUnavailable, "insert order: %w", err)
	}

	return record.toOrder(), nil
}

// ListAll returns every order in creation order.
func (r *Repository) ListAll(ctx context.Context) ([]reconcile.Order, error) {
	if r.db == nil {
		return nil, reconcile.Wrap(reconcile.ErrStorageUnavailable, "list: %w", errNotConfigured)
	}

	var records []OrderRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, reconcile.Wrap(reconcile.ErrStorageUnavailable, "list orders: %w", err)
	}

	orders := make([]reconcile.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, rec.toOrder())
	}
	return orders, nil
}

// ClearAll deletes every order and returns the number of deleted rows.
func (r *Repository) ClearAll(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, reconcile.Wrap(reconcile.ErrStorageUnavailable, "clear: %w", errNotConfigured)
	}

	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&OrderRecord{})
	if res.Error != nil {
		return 0, reconcile.Wrap(reconcile.ErrStorageUnavailable, "clear orders: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Ping verifies the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return reconcile.Wrap(reconcile.ErrStorageUnavailable, "ping: %w", errNotConfigured)
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return reconcile.Wrap(reconcile.ErrStorageUnavailable, "ping: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return reconcile.Wrap(reconcile.ErrStorageUnavailable, "ping: %w", err)
	}
	return nil
}
