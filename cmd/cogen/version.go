package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cogen/internal/version"
)

var versionTaglineColor = color.New(color.FgWhite, color.Italic)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cogen build fingerprint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cogen %s\n", v)
		if c := strings.TrimSpace(version.GitCommit); c != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", versionTaglineColor.Sprint(c))
		}
		if d := strings.TrimSpace(version.BuildDate); d != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", versionTaglineColor.Sprint(d))
		}
		return nil
	},
}
