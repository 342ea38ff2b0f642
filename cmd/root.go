package cmd

import (
	"fmt"
	"os"

	"custom-hats/core/config"
	"custom-hats/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "custom-hats",
	Short: "Custom Hats Service",
	Long: `Custom Hats merges externally supplied hats into a running host's customization catalog.
It polls until both the host catalog and the asset bundle are ready, then applies an idempotent merge.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable timestamps for CLI errors
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

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(&cfg.Log)
}
