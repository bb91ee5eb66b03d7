// Package session resolves the current user from the local configuration.
package session

import (
	"context"

	"github.com/example/pageturner/internal/config"
)

// ConfigProvider implements secondary.SessionProvider from a loaded config.
// The CLI has no interactive login; a session exists when the config carries
// a user id.
type ConfigProvider struct {
	cfg *config.Config
}

// NewConfigProvider creates a session provider backed by the given config.
// A nil config means no session.
func NewConfigProvider(cfg *config.Config) *ConfigProvider {
	return &ConfigProvider{cfg: cfg}
}

// CurrentUser returns the configured user id, or empty when no session is
// active.
func (p *ConfigProvider) CurrentUser(ctx context.Context) (string, error) {
	if p.cfg == nil {
		return "", nil
	}
	return p.cfg.UserID, nil
}
