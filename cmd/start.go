package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"replenishment-service/core/loader"
	"replenishment-service/core/logger"
	"replenishment-service/core/metrics"
	"replenishment-service/core/middleware/auth"
	"replenishment-service/core/middleware/rayid"
	"replenishment-service/core/reconcile"
	"replenishment-service/core/scheduler"
	"replenishment-service/feature/integrity"
	"replenishment-service/feature/replenishment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "replenishment-service/docs/swagger"
)

// @title Replenishment Service API
// @version 1.0
// @description Threshold-triggered replenishment reconciliation against the inventory gateway.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the replenishment server",
	Long:  `Starts the HTTP trigger surface, and the scheduled trigger when server.run_interval_seconds is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 1. Configuration, logger, ledger and optional archive
		svcs, err := loadServices(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := svcs.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		cfg := svcs.cfg

		// 2. Gateway client and engine
		gateway, err := svcs.gateway()
		if err != nil {
			logg.Fatal("Failed to create gateway client", zap.Error(err))
		}
		collector := metrics.NewCollector()
		engine := svcs.engine(gateway, reconcile.WithRecorder(collector))

		// 3. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(replenishment.NewFeature(engine, svcs.store, cfg.Reconcile, logg))
		mgr.Register(integrity.NewFeature(svcs.store, gateway, svcs.archiveInspector(), logg))

		// RayID first so every log line of a request carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 4. Scheduled trigger
		var trigger *scheduler.Trigger
		if cfg.Server.ScheduleEnabled() {
			trigger = scheduler.NewTrigger(scheduler.TriggerConfig{
				Interval:    cfg.Server.RunInterval(),
				Threshold:   cfg.Reconcile.Threshold,
				PassTimeout: cfg.Reconcile.PassTimeout(),
			}, engine, logg)
			if err := trigger.Start(ctx); err != nil {
				logg.Fatal("Failed to start scheduled trigger", zap.Error(err))
			}
		}

		// 5. Serve
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Int("threshold", cfg.Reconcile.Threshold),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		if trigger != nil {
			trigger.Stop()
		}
		_ = app.Shutdown()
		engine.Wait()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
