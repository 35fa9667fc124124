package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "llbc",
	Short: "Typed IR snapshot tooling",
	Long:  `llbc inspects and validates serialized crate snapshots produced by the IR translator`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(finalizeCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	cobra.OnInitialize(func() {
		switch mode, _ := rootCmd.PersistentFlags().GetString("color"); mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			color.NoColor = !isTerminal(os.Stdout)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
