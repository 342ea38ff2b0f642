package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the bundle and the host",
	Long:  `Checks the bundle folder, the bundle pairs, the host options schema and the anchor index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityCheck(cmd.Context(), "")
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bundle folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityCheck(cmd.Context(), "structure")
	},
}

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Check model/icon pairs of the bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityCheck(cmd.Context(), "bundle")
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the host options table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityCheck(cmd.Context(), "schema")
	},
}

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Check the anchor index against the host options",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityCheck(cmd.Context(), "anchor")
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, bundleCmd, schemaCmd, anchorCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bundle folder")
}

func runIntegrityCheck(ctx context.Context, only string) error {
	cfg, logg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logg.Sync()

	rt, err := newRuntime(ctx, cfg, logg, false)
	if err != nil {
		return err
	}
	defer rt.close()
	svc := rt.integrityService()

	var result any
	switch only {
	case "":
		result = svc.RunAll(ctx)
	case "structure":
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}
		if len(missing) > 0 && fixFlag {
			logg.Info("Fixing missing folders...", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
		} else if len(missing) > 0 {
			logg.Info("Run with --fix to create missing folders.")
		}
		result = map[string]any{"missing": missing, "fixed": fixFlag && len(missing) > 0}
	case "bundle":
		if result, err = svc.CheckBundle(ctx); err != nil {
			return fmt.Errorf("bundle check failed: %w", err)
		}
	case "schema":
		if result, err = svc.CheckSchema(); err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
	case "anchor":
		if result, err = svc.CheckAnchor(ctx); err != nil {
			return fmt.Errorf("anchor check failed: %w", err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
