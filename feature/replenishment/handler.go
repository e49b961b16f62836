package replenishment

import (
	"strconv"

	"replenishment-service/core/logger"
	"replenishment-service/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error" example:"UPSTREAM_UNAVAILABLE"`
	Details string `json:"details" example:"fetch inventory snapshot: dial tcp: connection refused"`
}

// ClearResponse is the body of a successful ledger clear.
type ClearResponse struct {
	DeletedCount int64 `json:"deletedCount" example:"3"`
}

// KindInvalidThreshold is reported for an unparsable threshold override.
const KindInvalidThreshold = "INVALID_THRESHOLD"

// Handler handles HTTP requests for replenishment.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the replenishment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/run-check", h.HandleRunCheck)
	app.Get("/orders", h.HandleListOrders)
	app.Delete("/orders", h.HandleClearOrders)
}

// HandleRunCheck runs one reconciliation pass.
// @Summary Run Reconciliation Check
// @Description Fetches the inventory snapshot and records one order per item strictly below the threshold. Orders are not deduplicated across runs.
// @Tags replenishment
// @Produce json
// @Param threshold query int false "Override the configured threshold"
// @Success 200 {array} reconcile.Order "Orders created by this pass"
// @Failure 400 {object} ErrorResponse "Invalid threshold"
// @Failure 500 {object} ErrorResponse "Ledger unavailable"
// @Failure 502 {object} ErrorResponse "Gateway rejected the call or returned bad data"
// @Failure 503 {object} ErrorResponse "Gateway unreachable"
// @Router /run-check [post]
func (h *Handler) HandleRunCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	threshold := h.service.Threshold()
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   KindInvalidThreshold,
				Details: "threshold must be an integer",
			})
		}
		threshold = v
	}

	l.Info("Reconciliation triggered", zap.Int("threshold", threshold))
	orders, err := h.service.RunCheck(c.UserContext(), threshold)
	if err != nil {
		return h.fail(c, l, "Reconciliation failed", err)
	}

	l.Info("Reconciliation finished", zap.Int("created", len(orders)))
	return c.JSON(orders)
}

// HandleListOrders lists every recorded order.
// @Summary List Orders
// @Description Returns every replenishment order in the ledger, oldest first.
// @Tags replenishment
// @Produce json
// @Success 200 {array} reconcile.Order "Recorded orders"
// @Failure 500 {object} ErrorResponse "Ledger unavailable"
// @Router /orders [get]
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	orders, err := h.service.ListOrders(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Failed to list orders", err)
	}
	return c.JSON(orders)
}

// HandleClearOrders removes every recorded order.
// @Summary Clear Orders
// @Description Deletes every replenishment order in the ledger.
// @Tags replenishment
// @Produce json
// @Success 200 {object} ClearResponse "Number of removed orders"
// @Failure 500 {object} ErrorResponse "Ledger unavailable"
// @Router /orders [delete]
func (h *Handler) HandleClearOrders(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	deleted, err := h.service.ClearOrders(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Failed to clear orders", err)
	}

	l.Info("Ledger cleared", zap.Int64("deleted", deleted))
	return c.JSON(ClearResponse{DeletedCount: deleted})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	kind := reconcile.KindOf(err)
	l.Error(msg, zap.String("kind", string(kind)), zap.Error(err))
	return c.Status(StatusFor(kind)).JSON(ErrorResponse{
		Error:   string(kind),
		Details: err.Error(),
	})
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(kind reconcile.ErrorKind) int {
	switch kind {
	case reconcile.KindUpstreamUnavailable:
		return fiber.StatusServiceUnavailable
	case reconcile.KindAuthenticationFailed, reconcile.KindUpstreamError, reconcile.KindDecodeError:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
