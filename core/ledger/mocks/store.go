package mocks

import (
	"context"

	"replenishment-service/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of ledger.Store
type Store struct {
	mock.Mock
}

func (m *Store) Insert(ctx context.Context, draft reconcile.OrderDraft) (reconcile.Order, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(reconcile.Order), args.Error(1)
}

func (m *Store) ListAll(ctx context.Context) ([]reconcile.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]reconcile.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ClearAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
