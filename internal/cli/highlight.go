package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/pageturner/internal/ports/primary"
	"github.com/example/pageturner/internal/wire"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Manage saved highlights",
	Long:  "Add, remove, and list highlights in the local store",
}

var highlightAddCmd = &cobra.Command{
	Use:   "add [chapter-id] [text]",
	Short: "Save a highlight for a chapter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterID := args[0]
		text := args[1]
		col, _ := cmd.Flags().GetString("color")

		svc := wire.HighlightService()
		if err := svc.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load highlights: %w", err)
		}

		h, err := svc.AddHighlight(cmd.Context(), primary.AddHighlightRequest{
			ChapterID: chapterID,
			Text:      text,
			Color:     col,
		})
		if err != nil {
			return fmt.Errorf("failed to add highlight: %w", err)
		}

		fmt.Printf("✓ Added %s highlight %s to %s\n", h.Color, h.ID, chapterID)
		return nil
	},
}

var highlightRemoveCmd = &cobra.Command{
	Use:   "remove [chapter-id] [highlight-id]",
	Short: "Remove a highlight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterID := args[0]
		highlightID := args[1]

		svc := wire.HighlightService()
		if err := svc.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load highlights: %w", err)
		}

		if err := svc.RemoveHighlight(cmd.Context(), chapterID, highlightID); err != nil {
			return fmt.Errorf("failed to remove highlight: %w", err)
		}

		fmt.Printf("✓ Removed highlight %s from %s\n", highlightID, chapterID)
		return nil
	},
}

var highlightListCmd = &cobra.Command{
	Use:   "list [chapter-id]",
	Short: "List a chapter's highlights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterID := args[0]

		svc := wire.HighlightService()
		if err := svc.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load highlights: %w", err)
		}

		highlights := svc.GetChapterHighlights(chapterID)
		if len(highlights) == 0 {
			fmt.Printf("No highlights in %s\n", chapterID)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOLOR\tTEXT")
		for _, h := range highlights {
			fmt.Fprintf(w, "%s\t%s\t%s\n", h.ID, colorize(h.Color, h.Color), h.Text)
		}
		return w.Flush()
	},
}

// HighlightCmd returns the highlight command with subcommands
func HighlightCmd() *cobra.Command {
	highlightAddCmd.Flags().String("color", "yellow", "Highlight color (yellow, green, blue, pink)")

	highlightCmd.AddCommand(highlightAddCmd)
	highlightCmd.AddCommand(highlightRemoveCmd)
	highlightCmd.AddCommand(highlightListCmd)

	return highlightCmd
}
