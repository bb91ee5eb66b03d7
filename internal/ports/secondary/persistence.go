// Package secondary defines the secondary ports (driven adapters) for the
// application: the interfaces through which it drives external systems.
package secondary

import "context"

// HighlightRecord represents a highlight as stored in persistence or sent
// over the wire. Position is the JSON-encoded anchor descriptor, empty when
// none was captured.
type HighlightRecord struct {
	ID        string
	ChapterID string
	Text      string
	Color     string
	Position  string
}

// HighlightCache is the local durable store of the user's highlight mapping.
// It is written after every mutation and is the authoritative fallback when
// the remote store is unreachable.
type HighlightCache interface {
	// LoadAll returns the full mapping, chapter id to records in insertion
	// order.
	LoadAll(ctx context.Context) (map[string][]*HighlightRecord, error)

	// Append adds a record to the end of its chapter bucket.
	Append(ctx context.Context, record *HighlightRecord) error

	// Remove deletes a record from a chapter bucket by id. Unknown ids are
	// a no-op.
	Remove(ctx context.Context, chapterID, highlightID string) error

	// ReplaceID swaps a temporary local id for the permanent remote one.
	ReplaceID(ctx context.Context, oldID, newID string) error

	// ReplaceAll overwrites the entire mapping, preserving the given
	// per-chapter order. Used when the remote list wins on load.
	ReplaceAll(ctx context.Context, mapping map[string][]*HighlightRecord) error
}
