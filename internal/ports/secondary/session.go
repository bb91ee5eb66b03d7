package secondary

import "context"

// SessionProvider resolves the current authenticated user, if any. The
// highlight store only attempts remote sync when a user is present.
type SessionProvider interface {
	// CurrentUser returns the authenticated user's id, or the empty string
	// when no session is active.
	CurrentUser(ctx context.Context) (string, error)
}
