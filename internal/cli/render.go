package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/pageturner/internal/core/content"
	"github.com/example/pageturner/internal/core/highlight"
)

var highlightColors = map[string]*color.Color{
	highlight.ColorYellow: color.New(color.BgYellow, color.FgBlack),
	highlight.ColorGreen:  color.New(color.BgGreen, color.FgBlack),
	highlight.ColorBlue:   color.New(color.BgBlue, color.FgWhite),
	highlight.ColorPink:   color.New(color.BgMagenta, color.FgBlack),
}

// colorize renders text in the terminal color that stands in for the given
// highlight color. Unknown colors pass through unstyled.
func colorize(highlightColor, text string) string {
	c, ok := highlightColors[highlight.NormalizeColor(highlightColor)]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// renderDocument writes the document block by block, styling highlight
// spans. Plain spans print as-is, so the visible text always matches the
// chapter source.
func renderDocument(w io.Writer, doc *content.Document, noColor bool) {
	for i, block := range doc.Blocks {
		if i > 0 {
			fmt.Fprint(w, "\n\n")
		}
		for _, span := range block.Spans {
			switch {
			case span.HighlightID == "":
				fmt.Fprint(w, span.Text)
			case noColor:
				fmt.Fprintf(w, "[%s]", span.Text)
			default:
				fmt.Fprint(w, colorize(span.Color, span.Text))
			}
		}
	}
	fmt.Fprintln(w)
}
