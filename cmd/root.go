package cmd

import (
	"fmt"
	"os"

	"otc-compare/core/config"
	"otc-compare/core/feed"
	"otc-compare/core/logger"
	"otc-compare/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "otc-compare",
	Short: "Marketplace vs Discord OTC price comparison",
	Long: `otc-compare compares the gold price of every Marketplace item with the
latest SB quote traded for it on Discord and reports where it is cheaper.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Development config gives ISO8601 timestamps on the console
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// runOptions maps the configuration onto reconcile options.
func runOptions(cfg *config.Config) reconcile.Options {
	return reconcile.Options{
		Pricing: cfg.Pricing,
		Batch:   cfg.Batch,
	}
}

// newSource builds the live feed client.
func newSource(cfg *config.Config, l *zap.Logger) reconcile.Source {
	return feed.NewClient(cfg.Feed, l)
}
