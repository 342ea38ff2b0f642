package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the bundle into the host catalog options",
	Long: `Loads the bundle and runs one integration attempt against the configured host database.
With --watch the retry loop keeps running until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		migrate, _ := cmd.Flags().GetBool("migrate")

		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx, cfg, logg, migrate)
		if err != nil {
			return err
		}
		defer rt.close()

		if rt.db == nil {
			logg.Warn("Host database not enabled, merging into an in-memory collection")
		}

		c, err := rt.loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		logg.Info("Catalog loaded", zap.Int("items", c.Len()))

		if watch {
			rt.scheduler.Run(ctx)
		} else if err := rt.scheduler.Once(ctx); err != nil {
			return err
		}

		data, err := json.MarshalIndent(rt.hatsService().Status(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().Bool("watch", false, "Keep retrying until interrupted")
	mergeCmd.Flags().Bool("migrate", false, "Create the host options table before merging")
}
