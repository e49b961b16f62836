package mocks

import (
	"context"

	"replenishment-service/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of inventory.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchSnapshot(ctx context.Context) ([]reconcile.InventoryItem, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]reconcile.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}
