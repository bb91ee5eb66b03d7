// Package primary defines the primary ports (driving interfaces) for the
// application: the operations UI-facing callers invoke.
package primary

import (
	"context"

	"github.com/example/pageturner/internal/core/highlight"
)

// Highlight is a user-saved, colored marking over a chapter substring.
type Highlight struct {
	ID        string
	ChapterID string
	Text      string
	Color     string
	Position  *highlight.Position
}

// AddHighlightRequest carries the inputs for creating a highlight.
type AddHighlightRequest struct {
	ChapterID string
	Text      string
	Color     string // normalized to yellow when absent or invalid
	Position  *highlight.Position
}

// HighlightService is the single source of truth for the current user's
// highlights across all chapters. Mutations are optimistic: local state and
// the durable cache commit first, the remote store is best-effort.
type HighlightService interface {
	// Load populates the store: durable cache first, then - only when a
	// session is active - the authoritative remote list, which overwrites
	// memory and cache. Remote failure silently falls back to the cache.
	Load(ctx context.Context) error

	// AddHighlight appends a record optimistically and syncs it to the
	// remote store when a session is active. The returned record carries
	// the permanent id when the remote confirmed in time, otherwise the
	// temporary local one. Remote failures are logged, never returned.
	AddHighlight(ctx context.Context, req AddHighlightRequest) (*Highlight, error)

	// RemoveHighlight deletes a record from its chapter bucket, locally
	// first and best-effort remotely. Removing an unknown id is a no-op.
	RemoveHighlight(ctx context.Context, chapterID, highlightID string) error

	// GetChapterHighlights returns the chapter's records in insertion
	// order. Never nil.
	GetChapterHighlights(chapterID string) []*Highlight
}
