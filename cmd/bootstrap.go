package cmd

import (
	"context"
	"fmt"
	"time"

	"replenishment-service/core/archive"
	"replenishment-service/core/config"
	"replenishment-service/core/database"
	"replenishment-service/core/inventory"
	"replenishment-service/core/ledger"
	"replenishment-service/core/logger"
	"replenishment-service/core/reconcile"
	"replenishment-service/core/storage"
	"replenishment-service/feature/integrity"

	"go.uber.org/zap"
)

// services holds the collaborators shared by the server and the CLI commands.
type services struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *ledger.Repository
	archiver *archive.Archiver
}

// loadServices loads configuration, builds the logger and opens the ledger.
// The archive is only set up when storage.archive is enabled; failing to reach it
// disables archiving instead of aborting.
func loadServices(ctx context.Context) (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("ledger database unavailable: %w", err)
	}
	store := ledger.NewRepository(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	logg.Info("Connected to ledger database", zap.String("driver", cfg.Database.Driver))

	s := &services{cfg: cfg, logger: logg, store: store}

	if cfg.Storage.Archive {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Snapshot archive disabled", zap.Error(err))
			return s, nil
		}
		arch := archive.New(client, cfg.Storage)
		if err := arch.EnsureBucket(ctx); err != nil {
			logg.Warn("Snapshot archive disabled", zap.Error(err))
			return s, nil
		}
		s.archiver = arch
		logg.Info("Snapshot archive enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	return s, nil
}

// gateway builds the mTLS inventory client.
func (s *services) gateway() (*inventory.GatewayClient, error) {
	client, err := inventory.NewClient(s.cfg.Gateway)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway client: %w", err)
	}
	return client, nil
}

// engine builds a reconciliation engine over the gateway and the ledger.
func (s *services) engine(gateway reconcile.Source, opts ...reconcile.Option) *reconcile.Engine {
	if s.archiver != nil {
		opts = append(opts,
			reconcile.WithArchiver(s.archiver),
			reconcile.WithArchiveTimeout(time.Duration(s.cfg.Storage.TimeoutSeconds)*time.Second),
		)
	}
	return reconcile.NewEngine(gateway, s.store, s.logger, opts...)
}

// archiveInspector returns the archiver as an integrity inspector, nil when disabled.
func (s *services) archiveInspector() integrity.ArchiveInspector {
	if s.archiver == nil {
		return nil
	}
	return s.archiver
}
