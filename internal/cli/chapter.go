package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/pageturner/internal/ports/primary"
	"github.com/example/pageturner/internal/wire"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Open and render chapters",
	Long:  "Render chapter text with saved highlights re-anchored into it",
}

var chapterRenderCmd = &cobra.Command{
	Use:   "render [chapter-id] [file]",
	Short: "Render a chapter with its highlights",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterID := args[0]
		file := args[1]
		fuzzy, _ := cmd.Flags().GetBool("fuzzy")
		noColor, _ := cmd.Flags().GetBool("no-color")

		source, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read chapter file: %w", err)
		}

		if err := wire.HighlightService().Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load highlights: %w", err)
		}

		reader := wire.NewReaderService()
		resp, err := reader.Open(cmd.Context(), primary.OpenChapterRequest{
			ChapterID: chapterID,
			Source:    string(source),
			Fuzzy:     fuzzy,
		})
		if err != nil {
			return fmt.Errorf("failed to open chapter: %w", err)
		}

		renderDocument(os.Stdout, resp.Document, noColor)

		if resp.Applied > 0 || resp.Skipped > 0 {
			fmt.Printf("\n%d highlight(s) shown", resp.Applied)
			if resp.Skipped > 0 {
				fmt.Printf(", %d no longer match the text", resp.Skipped)
			}
			fmt.Println()
		}
		return nil
	},
}

// ChapterCmd returns the chapter command with subcommands
func ChapterCmd() *cobra.Command {
	chapterRenderCmd.Flags().Bool("fuzzy", false, "Fall back to fuzzy matching for highlights whose text drifted")
	chapterRenderCmd.Flags().Bool("no-color", false, "Mark highlights with brackets instead of colors")

	chapterCmd.AddCommand(chapterRenderCmd)

	return chapterCmd
}
