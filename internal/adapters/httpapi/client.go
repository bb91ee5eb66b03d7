// Package httpapi contains the HTTP client for the remote highlight service.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/pageturner/internal/ports/secondary"
)

// wireHighlight is a highlight as the remote service represents it.
type wireHighlight struct {
	ID        string          `json:"_id"`
	ChapterID string          `json:"chapterId"`
	Text      string          `json:"text"`
	Color     string          `json:"color"`
	Position  json.RawMessage `json:"position,omitempty"`
}

type addRequest struct {
	ChapterID string          `json:"chapterId"`
	Text      string          `json:"text"`
	Color     string          `json:"color"`
	Position  json.RawMessage `json:"position,omitempty"`
}

type removeRequest struct {
	HighlightID string `json:"highlightId"`
}

// Client implements secondary.RemoteHighlightStore against the REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the remote highlight service.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// List fetches the user's complete flat highlight list.
func (c *Client) List(ctx context.Context) ([]*secondary.HighlightRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/highlights", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch highlights: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("highlight service returned status %d", resp.StatusCode)
	}

	var wire []wireHighlight
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode highlights: %w", err)
	}

	records := make([]*secondary.HighlightRecord, len(wire))
	for i, w := range wire {
		records[i] = &secondary.HighlightRecord{
			ID:        w.ID,
			ChapterID: w.ChapterID,
			Text:      w.Text,
			Color:     w.Color,
			Position:  string(w.Position),
		}
	}

	return records, nil
}

// Add persists a highlight remotely and returns the server-assigned id.
func (c *Client) Add(ctx context.Context, record *secondary.HighlightRecord) (string, error) {
	body := addRequest{
		ChapterID: record.ChapterID,
		Text:      record.Text,
		Color:     record.Color,
	}
	if record.Position != "" {
		body.Position = json.RawMessage(record.Position)
	}

	var created wireHighlight
	if err := c.post(ctx, "/highlights/add", body, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("highlight service returned no id")
	}

	return created.ID, nil
}

// Remove deletes a highlight remotely by id.
func (c *Client) Remove(ctx context.Context, highlightID string) error {
	return c.post(ctx, "/highlights/remove", removeRequest{HighlightID: highlightID}, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("highlight service returned status %d for %s", resp.StatusCode, path)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")
}
