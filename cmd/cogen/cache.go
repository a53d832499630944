package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cogen/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the on-disk build cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete every cached build artifact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dc, err := driver.OpenDiskCache("cogen")
		if err != nil {
			return err
		}
		if err := dc.DropAll(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "build cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
