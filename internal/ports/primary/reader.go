package primary

import (
	"context"

	"github.com/example/pageturner/internal/core/content"
	"github.com/example/pageturner/internal/core/selection"
)

// OpenChapterRequest materializes one chapter for reading.
type OpenChapterRequest struct {
	ChapterID string
	Source    string // raw chapter text, paragraphs separated by blank lines
	Fuzzy     bool   // approximate re-anchoring for records whose text drifted
}

// OpenChapterResponse reports the re-anchoring outcome.
type OpenChapterResponse struct {
	Document *content.Document
	Applied  int // highlights successfully re-anchored
	Skipped  int // records whose text was not found (silently dropped)
}

// ReaderService drives one reading session: it holds the open chapter's
// document, runs the selection interaction, and commits highlights through
// the highlight store.
type ReaderService interface {
	// Open parses the chapter source and re-anchors the chapter's saved
	// highlights into the fresh document. Individual anchoring failures
	// are logged and counted, never returned.
	Open(ctx context.Context, req OpenChapterRequest) (*OpenChapterResponse, error)

	// Select records a text selection, opening the action menu; an empty
	// selection dismisses it.
	Select(sel selection.Selection)

	// RequestHighlight advances from the action menu to the color picker.
	RequestHighlight() error

	// CommitHighlight wraps the pending selection in the document and
	// persists it. A selection spanning multiple blocks fails with
	// content.ErrCrossElement and creates no record.
	CommitHighlight(ctx context.Context, color string) (*Highlight, error)

	// Cancel dismisses the popup interaction.
	Cancel()

	// RemoveHighlight unwraps a highlight span in place and deletes the
	// record from the store.
	RemoveHighlight(ctx context.Context, highlightID string) error

	// LookupURL returns the definition-search URL for the pending
	// selection.
	LookupURL() (string, error)

	// State exposes the selection interaction state.
	State() selection.State

	// Document returns the open chapter's document, or nil before Open.
	Document() *content.Document
}
