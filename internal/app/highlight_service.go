// Package app contains the application services implementing the primary
// ports.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/pageturner/internal/core/highlight"
	"github.com/example/pageturner/internal/ports/primary"
	"github.com/example/pageturner/internal/ports/secondary"
)

// HighlightServiceImpl implements the HighlightService interface.
//
// Writes are optimistic: in-memory state and the durable cache commit first;
// the remote store is synced best-effort afterwards when a session is
// active. Remote failures are logged and swallowed - highlights are a
// convenience feature, not a system of record, and the local state is the
// authoritative fallback.
type HighlightServiceImpl struct {
	mu      sync.Mutex
	mapping map[string][]*primary.Highlight

	cache   secondary.HighlightCache
	remote  secondary.RemoteHighlightStore
	session secondary.SessionProvider
	log     *zap.Logger

	now func() time.Time
}

// NewHighlightService creates a new HighlightService with injected
// dependencies.
func NewHighlightService(cache secondary.HighlightCache, remote secondary.RemoteHighlightStore, session secondary.SessionProvider, log *zap.Logger) *HighlightServiceImpl {
	return &HighlightServiceImpl{
		mapping: make(map[string][]*primary.Highlight),
		cache:   cache,
		remote:  remote,
		session: session,
		log:     log,
		now:     time.Now,
	}
}

// Load populates the store. The durable cache is adopted immediately so
// callers see state without waiting on the network; when a session is
// active the remote list is fetched, grouped by chapter, and overwrites
// both memory and cache (remote wins). A remote failure leaves the cached
// state in place.
func (s *HighlightServiceImpl) Load(ctx context.Context) error {
	cached, err := s.cache.LoadAll(ctx)
	if err != nil {
		s.log.Warn("failed to load highlight cache", zap.Error(err))
		cached = make(map[string][]*secondary.HighlightRecord)
	}

	s.mu.Lock()
	s.mapping = recordsToHighlights(cached)
	s.mu.Unlock()

	if !s.hasSession(ctx) {
		return nil
	}

	records, err := s.remote.List(ctx)
	if err != nil {
		s.log.Warn("failed to fetch remote highlights, using cache", zap.Error(err))
		return nil
	}

	// Group the flat remote list by chapter, preserving list order.
	grouped := make(map[string][]*secondary.HighlightRecord)
	for _, r := range records {
		grouped[r.ChapterID] = append(grouped[r.ChapterID], r)
	}

	s.mu.Lock()
	s.mapping = recordsToHighlights(grouped)
	s.mu.Unlock()

	if err := s.cache.ReplaceAll(ctx, grouped); err != nil {
		s.log.Warn("failed to write highlight cache", zap.Error(err))
	}

	return nil
}

// AddHighlight appends a record optimistically, then syncs it to the remote
// store. On remote success the temporary id is replaced in place with the
// server-assigned one; on failure the optimistic record is retained.
func (s *HighlightServiceImpl) AddHighlight(ctx context.Context, req primary.AddHighlightRequest) (*primary.Highlight, error) {
	if req.ChapterID == "" {
		return nil, fmt.Errorf("chapter id is required")
	}
	if req.Text == "" {
		return nil, fmt.Errorf("highlight text is required")
	}

	record := &primary.Highlight{
		ID:        highlight.NewLocalID(s.now()),
		ChapterID: req.ChapterID,
		Text:      req.Text,
		Color:     highlight.NormalizeColor(req.Color),
		Position:  req.Position,
	}

	s.mu.Lock()
	s.mapping[req.ChapterID] = append(s.mapping[req.ChapterID], record)
	s.mu.Unlock()

	if err := s.cache.Append(ctx, highlightToRecord(record)); err != nil {
		s.log.Warn("failed to cache highlight", zap.String("id", record.ID), zap.Error(err))
	}

	if !s.hasSession(ctx) {
		return record, nil
	}

	remoteID, err := s.remote.Add(ctx, highlightToRecord(record))
	if err != nil {
		s.log.Warn("failed to sync highlight to remote", zap.String("id", record.ID), zap.Error(err))
		return record, nil
	}

	s.mu.Lock()
	// The record may have been removed while the remote call was in
	// flight; in that case the id patch silently no-ops and the end state
	// (absent) matches user intent.
	patched := false
	for _, h := range s.mapping[req.ChapterID] {
		if h.ID == record.ID {
			h.ID = remoteID
			patched = true
			break
		}
	}
	s.mu.Unlock()

	if patched {
		if err := s.cache.ReplaceID(ctx, record.ID, remoteID); err != nil {
			s.log.Warn("failed to patch highlight id in cache", zap.String("id", remoteID), zap.Error(err))
		}
	}

	return record, nil
}

// RemoveHighlight filters the record out of its chapter bucket, locally
// first and best-effort remotely. Unknown ids are a no-op.
func (s *HighlightServiceImpl) RemoveHighlight(ctx context.Context, chapterID, highlightID string) error {
	s.mu.Lock()
	bucket := s.mapping[chapterID]
	filtered := bucket[:0:0]
	for _, h := range bucket {
		if h.ID != highlightID {
			filtered = append(filtered, h)
		}
	}
	removed := len(filtered) != len(bucket)
	if removed {
		s.mapping[chapterID] = filtered
	}
	s.mu.Unlock()

	if removed {
		if err := s.cache.Remove(ctx, chapterID, highlightID); err != nil {
			s.log.Warn("failed to remove highlight from cache", zap.String("id", highlightID), zap.Error(err))
		}
	}

	if !s.hasSession(ctx) {
		return nil
	}

	if err := s.remote.Remove(ctx, highlightID); err != nil {
		s.log.Warn("failed to remove highlight from remote", zap.String("id", highlightID), zap.Error(err))
	}

	return nil
}

// GetChapterHighlights returns the chapter's records in insertion order,
// or an empty slice if none exist.
func (s *HighlightServiceImpl) GetChapterHighlights(chapterID string) []*primary.Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.mapping[chapterID]
	out := make([]*primary.Highlight, len(bucket))
	copy(out, bucket)
	return out
}

func (s *HighlightServiceImpl) hasSession(ctx context.Context) bool {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		s.log.Warn("failed to resolve session", zap.Error(err))
		return false
	}
	return user != ""
}

func recordsToHighlights(mapping map[string][]*secondary.HighlightRecord) map[string][]*primary.Highlight {
	out := make(map[string][]*primary.Highlight, len(mapping))
	for chapterID, records := range mapping {
		bucket := make([]*primary.Highlight, len(records))
		for i, r := range records {
			bucket[i] = &primary.Highlight{
				ID:        r.ID,
				ChapterID: r.ChapterID,
				Text:      r.Text,
				Color:     highlight.NormalizeColor(r.Color),
				Position:  highlight.DecodePosition(r.Position),
			}
		}
		out[chapterID] = bucket
	}
	return out
}

func highlightToRecord(h *primary.Highlight) *secondary.HighlightRecord {
	return &secondary.HighlightRecord{
		ID:        h.ID,
		ChapterID: h.ChapterID,
		Text:      h.Text,
		Color:     h.Color,
		Position:  h.Position.Encode(),
	}
}
