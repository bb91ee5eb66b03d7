package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/pageturner/internal/config"
	"github.com/example/pageturner/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the local highlight cache and configuration",
		Long:  `Initialize the highlight database at ~/.pageturner/pageturner.db and write the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiURL, _ := cmd.Flags().GetString("api-url")
			user, _ := cmd.Flags().GetString("user")
			token, _ := cmd.Flags().GetString("token")

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing highlight cache at %s\n", dbPath)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			dir, err := config.DefaultDir()
			if err != nil {
				return fmt.Errorf("failed to resolve config directory: %w", err)
			}

			// Keep the client id stable across re-runs.
			clientID := uuid.NewString()
			if existing, err := config.LoadConfig(dir); err == nil && existing.ClientID != "" {
				clientID = existing.ClientID
			}

			cfg := &config.Config{
				Version:  "1",
				APIURL:   apiURL,
				Token:    token,
				UserID:   user,
				ClientID: clientID,
			}
			if err := config.SaveConfig(dir, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Println("✓ Config file created at ~/.pageturner/config.json")
			if cfg.HasSession() {
				fmt.Printf("✓ Session active for %s - highlights will sync to %s\n", cfg.UserID, cfg.APIURL)
			} else {
				fmt.Println("No user configured - highlights stay local")
			}
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  pageturner chapter render chapter-1 book/chapter-1.txt")
			fmt.Println("  pageturner highlight list chapter-1")

			return nil
		},
	}

	cmd.Flags().String("api-url", "", "Base URL of the remote highlight service")
	cmd.Flags().String("user", "", "User id for remote sync (empty for local-only)")
	cmd.Flags().String("token", "", "Bearer token for the remote service")

	return cmd
}
