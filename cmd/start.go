package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"custom-hats/core/loader"
	"custom-hats/core/logger"
	"custom-hats/core/metrics"
	"custom-hats/core/middleware/auth"
	"custom-hats/core/middleware/rayid"
	"custom-hats/feature/hats"
	"custom-hats/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "custom-hats/docs/swagger"
)

// @title Custom Hats API
// @version 1.0
// @description API for merging custom hats into a host customization catalog.
// @host localhost:8080
// @BasePath /

var migrateFlag bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the custom hats service",
	Long:  `Loads the asset bundle, starts the retry loop that merges it into the host, and serves the HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx, cfg, logg, migrateFlag)
		if err != nil {
			return err
		}
		defer rt.close()

		// Bundle and host become ready in no particular order; the loop polls for both
		go rt.loadCatalog(ctx)
		go rt.scheduler.Run(ctx)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(hats.NewFeature(rt.hatsService()))
		mgr.Register(integrity.NewFeature(rt.integrityService()))

		// RayID must be first to trace everything
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
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Error("Server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&migrateFlag, "migrate", false, "Create the host options table when the database is enabled")
}
