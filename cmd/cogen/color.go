package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// applyColorFlag honors --color=auto|on|off by toggling color.NoColor before
// a command runs, auto-detecting a TTY on stderr the way the teacher's CLI
// decided whether to colorize diagnostic output.
func applyColorFlag(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))
	}
	return nil
}
