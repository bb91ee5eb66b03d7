package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/pageturner/internal/config"
	"github.com/example/pageturner/internal/wire"
)

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull highlights from the remote service into the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDir()
			if err != nil {
				return fmt.Errorf("failed to resolve config directory: %w", err)
			}
			cfg, err := config.LoadConfig(dir)
			if err != nil || !cfg.HasSession() {
				fmt.Println("No session configured - nothing to sync")
				fmt.Println("Hint: pageturner init --api-url <url> --user <id> --token <token>")
				return nil
			}

			svc := wire.HighlightService()
			if err := svc.Load(cmd.Context()); err != nil {
				return fmt.Errorf("failed to sync highlights: %w", err)
			}

			fmt.Printf("✓ Synced highlights for %s from %s\n", cfg.UserID, cfg.APIURL)
			return nil
		},
	}
}
