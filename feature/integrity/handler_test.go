package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	invmocks "replenishment-service/core/inventory/mocks"
	ledgermocks "replenishment-service/core/ledger/mocks"
	"replenishment-service/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *ledgermocks.Store, *invmocks.Client) {
	t.Helper()
	store := new(ledgermocks.Store)
	gateway := new(invmocks.Client)

	app := fiber.New()
	feature := NewFeature(store, gateway, nil, zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, store, gateway
}

func TestHandleIntegrityCheck_Healthy(t *testing.T) {
	app, store, gateway := setupTestApp(t)
	store.On("Ping", mock.Anything).Return(nil)
	gateway.On("FetchSnapshot", mock.Anything).Return([]reconcile.InventoryItem{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, StatusOK, body["ledger"].Status)
	assert.Equal(t, StatusOK, body["gateway"].Status)
	assert.Equal(t, StatusDisabled, body["archive"].Status)
}

func TestHandleIntegrityCheck_Degraded(t *testing.T) {
	app, store, gateway := setupTestApp(t)
	store.On("Ping", mock.Anything).Return(reconcile.Wrap(reconcile.ErrStorageUnavailable, "refused"))
	gateway.On("FetchSnapshot", mock.Anything).Return([]reconcile.InventoryItem{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleGatewayCheck(t *testing.T) {
	app, _, gateway := setupTestApp(t)
	gateway.On("FetchSnapshot", mock.Anything).Return(nil, reconcile.Wrap(reconcile.ErrUpstreamError, "status 500")).Once()
	gateway.On("FetchSnapshot", mock.Anything).Return([]reconcile.InventoryItem{{ID: "1", SKU: "A", Quantity: 3}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/gateway", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	var body Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(reconcile.KindUpstreamError), body.Kind)

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/gateway", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Items)
	assert.Equal(t, 1, *body.Items)
}

func TestHandleLedgerAndArchiveCheck(t *testing.T) {
	app, store, _ := setupTestApp(t)
	store.On("Ping", mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/ledger", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
