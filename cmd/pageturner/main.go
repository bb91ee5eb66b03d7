package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/pageturner/internal/cli"
	"github.com/example/pageturner/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "pageturner",
		Short:   "PageTurner - read chapters and keep highlights",
		Version: version.String(),
		Long: `PageTurner renders book chapters in the terminal and manages text
highlights: saved locally first, synced to the remote service when a
session is configured, and re-anchored into the text on every render.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ChapterCmd())
	rootCmd.AddCommand(cli.HighlightCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.LookupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
