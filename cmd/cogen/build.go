package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cogen/internal/diag"
	"cogen/internal/driver"
)

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Lower a resolved package to LLVM IR text",
	Long:  "build reads co.toml (if present), resolves the package at path via the registered frontend, and lowers it to LLVM IR text.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

var buildOut string

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "write emitted IR to this file instead of stdout")
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	cfg := driver.DefaultBuildConfig()
	if manifest, err := driver.FindBuildConfig(path); err != nil {
		return err
	} else if manifest != "" {
		cfg, err = driver.LoadBuildConfig(manifest)
		if err != nil {
			return err
		}
	}

	if driver.ActiveFrontend == nil {
		return fmt.Errorf("cogen: no frontend registered; link in a parser/resolver that sets driver.ActiveFrontend before calling build")
	}
	pkg, err := driver.ActiveFrontend(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	maxDiag, _ := cmd.Flags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiag)
	bctx := driver.NewBuildContext(256, &diag.BagReporter{Bag: bag})
	bctx.IntWidth = cfg.IntWidth

	mod, buildErr := driver.BuildPackage(bctx, pkg)
	printDiagnostics(cmd, bag)
	if buildErr != nil {
		return buildErr
	}

	text := mod.String()
	if buildOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(buildOut), 0o755); err != nil {
		return err
	}
	return os.WriteFile(buildOut, []byte(text), 0o644)
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag) {
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		return
	}
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	for _, d := range bag.Items() {
		sev := errColor.Sprint(d.Severity.String())
		if d.Severity == diag.SevWarning {
			sev = warnColor.Sprint(d.Severity.String())
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", sev, d.Code.ID(), d.Message)
	}
}
