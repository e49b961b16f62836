package integrity

import (
	"context"

	"replenishment-service/core/reconcile"

	"go.uber.org/zap"
)

// Status values of a check report.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// Pinger verifies the ledger database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ArchiveInspector reports on the snapshot archive.
type ArchiveInspector interface {
	Inspect(ctx context.Context) (string, error)
}

// Report is the outcome of a single check.
type Report struct {
	Status         string `json:"status" example:"ok"`
	Kind           string `json:"kind,omitempty" example:"UPSTREAM_UNAVAILABLE"`
	Error          string `json:"error,omitempty"`
	Items          *int   `json:"items,omitempty" example:"42"`
	LatestSnapshot string `json:"latestSnapshot,omitempty"`
}

// Healthy reports whether the check did not fail.
func (r Report) Healthy() bool {
	return r.Status != StatusError
}

// Service handles integrity checks.
type Service struct {
	ledger  Pinger
	gateway reconcile.Source
	archive ArchiveInspector
	logger  *zap.Logger
}

// NewService creates a new integrity service. archive may be nil when archiving is disabled.
func NewService(ledger Pinger, gateway reconcile.Source, archive ArchiveInspector, logger *zap.Logger) *Service {
	return &Service{
		ledger:  ledger,
		gateway: gateway,
		archive: archive,
		logger:  logger,
	}
}

// CheckLedger pings the ledger database.
func (s *Service) CheckLedger(ctx context.Context) Report {
	if err := s.ledger.Ping(ctx); err != nil {
		return failed(err)
	}
	return Report{Status: StatusOK}
}

// CheckGateway fetches one snapshot through the gateway. It exercises the client
// certificate and trust anchor exactly like a pass does, without touching the ledger.
func (s *Service) CheckGateway(ctx context.Context) Report {
	items, err := s.gateway.FetchSnapshot(ctx)
	if err != nil {
		return failed(reconcile.SourceError(err))
	}
	n := len(items)
	return Report{Status: StatusOK, Items: &n}
}

// CheckArchive verifies the archive bucket and reports the latest snapshot.
func (s *Service) CheckArchive(ctx context.Context) Report {
	if s.archive == nil {
		return Report{Status: StatusDisabled}
	}
	latest, err := s.archive.Inspect(ctx)
	if err != nil {
		return Report{Status: StatusError, Error: err.Error()}
	}
	return Report{Status: StatusOK, LatestSnapshot: latest}
}

// CheckAll runs every check.
func (s *Service) CheckAll(ctx context.Context) map[string]Report {
	return map[string]Report{
		"ledger":  s.CheckLedger(ctx),
		"gateway": s.CheckGateway(ctx),
		"archive": s.CheckArchive(ctx),
	}
}

func failed(err error) Report {
	return Report{
		Status: StatusError,
		Kind:   string(reconcile.KindOf(err)),
		Error:  err.Error(),
	}
}
