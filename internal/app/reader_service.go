package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/pageturner/internal/core/anchor"
	"github.com/example/pageturner/internal/core/content"
	"github.com/example/pageturner/internal/core/highlight"
	"github.com/example/pageturner/internal/core/selection"
	"github.com/example/pageturner/internal/ports/primary"
)

// pendingID labels the highlight span between the document wrap and the
// store commit. The wrap happens first so a failing wrap can never leave an
// orphaned persisted record; the span is relabeled once the store returns
// the real id.
const pendingID = "pending"

// ReaderServiceImpl implements the ReaderService interface. It holds one
// open chapter at a time.
type ReaderServiceImpl struct {
	highlights primary.HighlightService
	log        *zap.Logger

	machine   selection.Machine
	doc       *content.Document
	chapterID string
}

// NewReaderService creates a new ReaderService with injected dependencies.
func NewReaderService(highlights primary.HighlightService, log *zap.Logger) *ReaderServiceImpl {
	return &ReaderServiceImpl{
		highlights: highlights,
		log:        log,
	}
}

// Open parses the chapter source and re-anchors saved highlights into the
// fresh document. Records whose text is not found are skipped silently;
// per-record failures never abort the rest.
func (s *ReaderServiceImpl) Open(ctx context.Context, req primary.OpenChapterRequest) (*primary.OpenChapterResponse, error) {
	if req.ChapterID == "" {
		return nil, fmt.Errorf("chapter id is required")
	}

	doc := content.Parse(req.Source)
	s.doc = doc
	s.chapterID = req.ChapterID
	s.machine.Dismiss()

	resp := &primary.OpenChapterResponse{Document: doc}

	for _, record := range s.highlights.GetChapterHighlights(req.ChapterID) {
		// Segments are re-read per record: each applied wrap splits a
		// span, and later records walk the mutated tree just like the
		// original walked the mutated DOM.
		segs := doc.Segments()
		texts := make([]string, len(segs))
		for i, seg := range segs {
			texts[i] = seg.Text
		}

		m, ok := anchor.FindScored(texts, record.Text, record.Position)
		if !ok && req.Fuzzy {
			m, ok = anchor.FindFuzzy(texts, record.Text)
		}
		if !ok {
			s.log.Debug("highlight text not found in chapter",
				zap.String("chapter", req.ChapterID),
				zap.String("id", record.ID))
			resp.Skipped++
			continue
		}

		seg := segs[m.Segment]
		if err := doc.WrapSegment(seg.Block, seg.Span, m.Start, m.End, record.ID, record.Color); err != nil {
			s.log.Warn("failed to restore highlight",
				zap.String("chapter", req.ChapterID),
				zap.String("id", record.ID),
				zap.Error(err))
			resp.Skipped++
			continue
		}
		resp.Applied++
	}

	return resp, nil
}

// Select records a text selection; an empty selection dismisses the popup.
func (s *ReaderServiceImpl) Select(sel selection.Selection) {
	s.machine.Select(sel)
}

// RequestHighlight advances from the action menu to the color picker.
func (s *ReaderServiceImpl) RequestHighlight() error {
	return s.machine.OpenColorPicker()
}

// CommitHighlight turns the pending selection into a persisted highlight.
//
// Sequencing: the document wrap runs before persistence. A selection that
// cannot be wrapped (it spans multiple blocks, or partially covers another
// highlight) fails with content.ErrCrossElement and creates no record; if
// the store's optimistic phase fails the wrap is rolled back.
func (s *ReaderServiceImpl) CommitHighlight(ctx context.Context, color string) (*primary.Highlight, error) {
	if s.doc == nil {
		return nil, ErrNoChapter
	}

	sel, err := s.machine.TakeCommit()
	if err != nil {
		return nil, err
	}

	guard := highlight.CanCommitHighlight(highlight.CommitContext{
		ChapterID:     s.chapterID,
		Text:          sel.Text,
		CrossesBlocks: sel.Range.CrossesBlocks(),
	})
	if !guard.Allowed {
		if sel.Range.CrossesBlocks() {
			return nil, content.ErrCrossElement
		}
		return nil, guard.Error()
	}

	// Capture the anchor descriptor from the live range before the wrap
	// splits the containing span.
	loc, err := s.doc.Resolve(sel.Range.StartBlock, sel.Range.StartOffset, sel.Range.EndOffset)
	if err != nil {
		return nil, err
	}
	pos := &highlight.Position{
		StartContainerText: loc.SpanText,
		StartOffset:        loc.Start,
		EndContainerText:   loc.SpanText,
		EndOffset:          loc.End,
	}

	normColor := highlight.NormalizeColor(color)
	if err := s.doc.Wrap(sel.Range.StartBlock, sel.Range.StartOffset, sel.Range.EndOffset, pendingID, normColor); err != nil {
		return nil, err
	}

	record, err := s.highlights.AddHighlight(ctx, primary.AddHighlightRequest{
		ChapterID: s.chapterID,
		Text:      sel.Text,
		Color:     normColor,
		Position:  pos,
	})
	if err != nil {
		s.doc.Unwrap(pendingID)
		return nil, err
	}

	s.doc.Relabel(pendingID, record.ID)
	return record, nil
}

// Cancel dismisses the popup interaction.
func (s *ReaderServiceImpl) Cancel() {
	s.machine.Dismiss()
}

// RemoveHighlight unwraps the span in place and deletes the record. The
// span may be absent (e.g. its record never re-anchored); store removal
// still runs.
func (s *ReaderServiceImpl) RemoveHighlight(ctx context.Context, highlightID string) error {
	if s.doc == nil {
		return ErrNoChapter
	}
	s.doc.Unwrap(highlightID)
	return s.highlights.RemoveHighlight(ctx, s.chapterID, highlightID)
}

// LookupURL returns the definition-search URL for the pending selection.
func (s *ReaderServiceImpl) LookupURL() (string, error) {
	st := s.machine.State()
	if st.Phase == selection.Idle {
		return "", selection.ErrNoSelection
	}
	return selection.LookupURL(st.Selection.Text), nil
}

// State exposes the selection interaction state.
func (s *ReaderServiceImpl) State() selection.State {
	return s.machine.State()
}

// Document returns the open chapter's document, or nil before Open.
func (s *ReaderServiceImpl) Document() *content.Document {
	return s.doc
}

// ErrNoChapter reports operations attempted before a chapter is open.
var ErrNoChapter = errors.New("no chapter open")
