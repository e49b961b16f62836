package replenishment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"replenishment-service/core/database"
	"replenishment-service/core/inventory/mocks"
	"replenishment-service/core/ledger"
	ledgermocks "replenishment-service/core/ledger/mocks"
	"replenishment-service/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var scenario = []reconcile.InventoryItem{
	{ID: "item-1", SKU: "SKU-001", Quantity: 5},
	{ID: "item-2", SKU: "SKU-002", Quantity: 12},
	{ID: "item-3", SKU: "SKU-003", Quantity: 0},
}

func setupTestApp(t *testing.T, opts ...reconcile.Option) (*fiber.App, *mocks.Client) {
	t.Helper()
	app, gateway, _ := setupTestAppWithEngine(t, opts...)
	return app, gateway
}

func setupTestAppWithEngine(t *testing.T, opts ...reconcile.Option) (*fiber.App, *mocks.Client, *reconcile.Engine) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := ledger.NewRepository(db)
	require.NoError(t, store.Migrate(context.Background()))

	gateway := new(mocks.Client)
	engine := reconcile.NewEngine(gateway, store, zap.NewNop(), opts...)

	app := fiber.New()
	feature := NewFeature(engine, store, reconcile.Config{Threshold: 10, PassTimeoutSeconds: 1}, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, gateway, engine
}

func doRequest(t *testing.T, app *fiber.App, method, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleRunCheck(t *testing.T) {
	app, gateway := setupTestApp(t)
	gateway.On("FetchSnapshot", mock.Anything).Return(scenario, nil)

	var created []map[string]any
	status := doRequest(t, app, "POST", "/run-check", &created)
	require.Equal(t, 200, status)
	require.Len(t, created, 2)

	assert.Equal(t, "item-1", created[0]["itemId"])
	assert.Equal(t, "SKU-001", created[0]["sku"])
	assert.Equal(t, float64(5), created[0]["quantityToOrder"])
	assert.NotEmpty(t, created[0]["id"])
	assert.Equal(t, "item-3", created[1]["itemId"])
	assert.Equal(t, float64(10), created[1]["quantityToOrder"])

	var listed []map[string]any
	require.Equal(t, 200, doRequest(t, app, "GET", "/orders", &listed))
	assert.Equal(t, created, listed)
}

// stalledArchive never finishes an upload before its context ends.
type stalledArchive struct{}

func (stalledArchive) Archive(ctx context.Context, passID string, items []reconcile.InventoryItem) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestHandleRunCheck_StalledArchiveKeepsOrders(t *testing.T) {
	app, gateway, engine := setupTestAppWithEngine(t,
		reconcile.WithArchiver(stalledArchive{}),
		reconcile.WithArchiveTimeout(1500*time.Millisecond),
	)
	gateway.On("FetchSnapshot", mock.Anything).Return(scenario, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/run-check", nil), 3000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var created []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Len(t, created, 2)

	engine.Wait()

	var listed []map[string]any
	require.Equal(t, 200, doRequest(t, app, "GET", "/orders", &listed))
	assert.Len(t, listed, 2)
}

func TestHandleRunCheck_NothingBelowThreshold(t *testing.T) {
	app, gateway := setupTestApp(t)
	gateway.On("FetchSnapshot", mock.Anything).Return([]reconcile.InventoryItem{
		{ID: "item-1", SKU: "SKU-001", Quantity: 10},
	}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/run-check", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandleRunCheck_ThresholdOverride(t *testing.T) {
	app, gateway := setupTestApp(t)
	gateway.On("FetchSnapshot", mock.Anything).Return(scenario, nil)

	var created []map[string]any
	require.Equal(t, 200, doRequest(t, app, "POST", "/run-check?threshold=13", &created))
	require.Len(t, created, 3)
	assert.Equal(t, float64(1), created[1]["quantityToOrder"])

	var body ErrorResponse
	assert.Equal(t, 400, doRequest(t, app, "POST", "/run-check?threshold=ten", &body))
	assert.Equal(t, KindInvalidThreshold, body.Error)
	gateway.AssertNumberOfCalls(t, "FetchSnapshot", 1)
}

// Orders are not deduplicated: a second pass over the same snapshot records the
// same shortfall again.
func TestHandleRunCheck_RepeatedPassesDuplicateOrders(t *testing.T) {
	app, gateway := setupTestApp(t)
	gateway.On("FetchSnapshot", mock.Anything).Return(scenario, nil)

	var first, second []map[string]any
	require.Equal(t, 200, doRequest(t, app, "POST", "/run-check", &first))
	require.Equal(t, 200, doRequest(t, app, "POST", "/run-check", &second))
	require.Len(t, second, 2)
	assert.NotEqual(t, first[0]["id"], second[0]["id"])

	var listed []map[string]any
	require.Equal(t, 200, doRequest(t, app, "GET", "/orders", &listed))
	require.Len(t, listed, 4)

	perItem := map[string]int{}
	for _, o := range listed {
		perItem[o["itemId"].(string)]++
	}
	assert.Equal(t, map[string]int{"item-1": 2, "item-3": 2}, perItem)
}

func TestHandleClearOrders(t *testing.T) {
	app, gateway := setupTestApp(t)
	gateway.On("FetchSnapshot", mock.Anything).Return(scenario, nil)

	var created []map[string]any
	require.Equal(t, 200, doRequest(t, app, "POST", "/run-check", &created))

	var cleared ClearResponse
	require.Equal(t, 200, doRequest(t, app, "DELETE", "/orders", &cleared))
	assert.Equal(t, int64(2), cleared.DeletedCount)

	var listed []map[string]any
	require.Equal(t, 200, doRequest(t, app, "GET", "/orders", &listed))
	assert.Empty(t, listed)

	require.Equal(t, 200, doRequest(t, app, "DELETE", "/orders", &cleared))
	assert.Equal(t, int64(0), cleared.DeletedCount)
}

func TestHandleRunCheck_GatewayFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   reconcile.ErrorKind
	}{
		{"authentication", reconcile.Wrap(reconcile.ErrAuthenticationFailed, "status 401"), 502, reconcile.KindAuthenticationFailed},
		{"unavailable", reconcile.Wrap(reconcile.ErrUpstreamUnavailable, "connection refused"), 503, reconcile.KindUpstreamUnavailable},
		{"upstream error", reconcile.Wrap(reconcile.ErrUpstreamError, "status 500"), 502, reconcile.KindUpstreamError},
		{"decode", reconcile.Wrap(reconcile.ErrDecode, "unexpected EOF"), 502, reconcile.KindDecodeError},
		{"unclassified", errors.New("boom"), 503, reconcile.KindUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, gateway := setupTestApp(t)
			gateway.On("FetchSnapshot", mock.Anything).Return(nil, tt.err)

			var body ErrorResponse
			assert.Equal(t, tt.status, doRequest(t, app, "POST", "/run-check", &body))
			assert.Equal(t, string(tt.kind), body.Error)
			assert.NotEmpty(t, body.Details)

			var listed []map[string]any
			require.Equal(t, 200, doRequest(t, app, "GET", "/orders", &listed))
			assert.Empty(t, listed, "a failed fetch must not create orders")
		})
	}
}

func TestHandlers_StorageUnavailable(t *testing.T) {
	store := new(ledgermocks.Store)
	storageErr := reconcile.Wrap(reconcile.ErrStorageUnavailable, "connection reset")
	store.On("Insert", mock.Anything, mock.Anything).Return(reconcile.Order{}, storageErr)
	store.On("ListAll", mock.Anything).Return(nil, storageErr)
	store.On("ClearAll", mock.Anything).Return(int64(0), storageErr)

	gateway := new(mocks.Client)
	gateway.On("FetchSnapshot", mock.Anything).Return(scenario, nil)

	app := fiber.New()
	engine := reconcile.NewEngine(gateway, store, zap.NewNop())
	NewHandler(NewService(engine, store, reconcile.Config{Threshold: 10}, zap.NewNop())).RegisterRoutes(app)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/run-check"},
		{"GET", "/orders"},
		{"DELETE", "/orders"},
	} {
		var body ErrorResponse
		assert.Equal(t, 500, doRequest(t, app, tc.method, tc.path, &body), tc.method+" "+tc.path)
		assert.Equal(t, string(reconcile.KindStorageUnavailable), body.Error)
	}
	store.AssertNumberOfCalls(t, "Insert", 1)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 502, StatusFor(reconcile.KindAuthenticationFailed))
	assert.Equal(t, 503, StatusFor(reconcile.KindUpstreamUnavailable))
	assert.Equal(t, 502, StatusFor(reconcile.KindUpstreamError))
	assert.Equal(t, 502, StatusFor(reconcile.KindDecodeError))
	assert.Equal(t, 500, StatusFor(reconcile.KindStorageUnavailable))
	assert.Equal(t, 500, StatusFor(reconcile.KindInternal))
}
