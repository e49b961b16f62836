package integrity

import (
	"replenishment-service/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
	group.Get("/gateway", h.HandleGatewayCheck)
	group.Get("/archive", h.HandleArchiveCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the ledger database, the inventory gateway and the snapshot archive.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]Report "All checks passed"
// @Failure 503 {object} map[string]Report "At least one check failed"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.UserContext())
	status := fiber.StatusOK
	for name, r := range report {
		if !r.Healthy() {
			l.Warn("Integrity check failed", zap.String("check", name), zap.String("error", r.Error))
			status = fiber.StatusServiceUnavailable
		}
	}
	return c.Status(status).JSON(report)
}

// HandleLedgerCheck pings the ledger database.
// @Summary Check Ledger
// @Tags integrity
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	return h.respond(c, "ledger", h.service.CheckLedger(c.UserContext()))
}

// HandleGatewayCheck fetches a snapshot through the gateway.
// @Summary Check Gateway
// @Description Fetches one inventory snapshot over mTLS. No orders are recorded.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /integrity/gateway [get]
func (h *Handler) HandleGatewayCheck(c *fiber.Ctx) error {
	return h.respond(c, "gateway", h.service.CheckGateway(c.UserContext()))
}

// HandleArchiveCheck inspects the snapshot archive bucket.
// @Summary Check Archive
// @Tags integrity
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /integrity/archive [get]
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	return h.respond(c, "archive", h.service.CheckArchive(c.UserContext()))
}

func (h *Handler) respond(c *fiber.Ctx, name string, r Report) error {
	if !r.Healthy() {
		logger.WithRayID(h.service.logger, c).Warn("Integrity check failed",
			zap.String("check", name),
			zap.String("kind", r.Kind),
			zap.String("error", r.Error),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(r)
	}
	return c.JSON(r)
}
