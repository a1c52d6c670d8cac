package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"otc-compare/core/database"
	"otc-compare/core/loader"
	"otc-compare/core/logger"
	"otc-compare/core/middleware/auth"
	"otc-compare/core/middleware/rayid"
	"otc-compare/feature/comparison"
	"otc-compare/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "otc-compare/docs/swagger"
)

// @title OTC Compare API
// @version 1.0
// @description Compare Marketplace gold prices with Discord OTC SB quotes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the comparison API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Comparison service over a shared catalog snapshot
		svc := comparison.NewService(newSource(cfg, logg), runOptions(cfg), cfg.Server.SnapshotTTL(), logg)

		// 3. Connect to Database (Optional)
		var repo *history.Repository
		if conn, err := database.Connect(cfg.Database); err != nil {
			if !errors.Is(err, database.ErrDisabled) {
				logg.Warn("Optional database connection failed", zap.Error(err))
			}
		} else {
			repo = history.NewRepository(conn)
			if err := repo.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate history tables: %w", err)
			}
			svc.WithRecorder(repo)
			logg.Info("Run history enabled")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(comparison.NewFeature(svc))
		mgr.Register(history.NewFeature(repo, logg))

		// RayID first so every log line carries it
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.AuthEnabled() {
			logg.Warn("SERVER_API_KEY is empty; the API is unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
