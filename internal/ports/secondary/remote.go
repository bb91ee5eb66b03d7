package secondary

import "context"

// RemoteHighlightStore is the remote highlight service. All calls are
// best-effort from the store's perspective: failures are logged at the
// service boundary and never surfaced to callers.
type RemoteHighlightStore interface {
	// List fetches the authoritative flat list of the user's highlights.
	List(ctx context.Context) ([]*HighlightRecord, error)

	// Add persists a highlight remotely and returns the server-assigned id.
	Add(ctx context.Context, record *HighlightRecord) (string, error)

	// Remove deletes a highlight remotely by id.
	Remove(ctx context.Context, highlightID string) error
}
