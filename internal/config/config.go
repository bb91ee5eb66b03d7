package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat pageturner configuration
type Config struct {
	Version  string `json:"version"`
	APIURL   string `json:"api_url"`             // Base URL of the remote highlight service
	Token    string `json:"token,omitempty"`     // Bearer token for the remote service
	UserID   string `json:"user_id,omitempty"`   // Authenticated user; empty means no session
	ClientID string `json:"client_id,omitempty"` // Stable per-install identifier
}

// HasSession reports whether a user session is active. Remote sync only
// happens when a user is present; everything else works from the local cache.
func (c *Config) HasSession() bool {
	return c != nil && c.UserID != ""
}

// LoadConfig reads .pageturner/config.json from the specified directory.
// Resolution order: dir only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".pageturner", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	ptDir := filepath.Join(dir, ".pageturner")
	if err := os.MkdirAll(ptDir, 0755); err != nil {
		return fmt.Errorf("failed to create .pageturner dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(ptDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDir returns the directory that holds the config and the local cache.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
