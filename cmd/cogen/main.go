// Package main implements the cogen CLI, the front door onto the codegen
// core's driver (spec's "CLI parsing lives outside the core", carried here
// the way cmd/surge fronted the teacher's driver).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cogen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cogen",
	Short: "Co language codegen driver",
	Long:  "cogen lowers a fully-resolved typed AST to LLVM-style IR.",
}

var (
	timeoutCancel context.CancelFunc
)

func main() {
	rootCmd.Version = version.Version
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := applyColorFlag(cmd, args); err != nil {
			return err
		}
		return applyTimeout(cmd, args)
	}
	rootCmd.PersistentPostRun = cleanupTimeout

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", 0, "max concurrent package builds (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().Int("timeout", 30, "command timeout in seconds")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyTimeout(cmd *cobra.Command, _ []string) error {
	secs, err := cmd.Root().PersistentFlags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to read timeout flag: %w", err)
	}
	if secs <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(secs)*time.Second)
	timeoutCancel = cancel
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
	return nil
}

func cleanupTimeout(*cobra.Command, []string) {
	if timeoutCancel != nil {
		timeoutCancel()
		timeoutCancel = nil
	}
}
