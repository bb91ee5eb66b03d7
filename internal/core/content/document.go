// Package content models rendered chapter content as ordered blocks of
// inline spans. It is the stand-in for the browser DOM the highlight
// subsystem originally operated on: blocks are block-level elements
// (paragraphs), spans are text nodes or highlight wrappers. The tree is
// regenerated from chapter source on every load, so nothing here survives
// between visits; saved highlights are re-applied by re-anchoring.
package content

import (
	"errors"
	"strings"
)

// ErrCrossElement is returned when a wrap would span multiple block-level
// elements, or partially cover an existing highlight span. Mirrors the
// browser's surroundContents failure mode.
var ErrCrossElement = errors.New("selection spans multiple elements")

// ErrOutOfRange is returned for offsets outside the block's text.
var ErrOutOfRange = errors.New("offsets out of range")

// Span is an inline run of text. HighlightID is empty for plain text;
// a non-empty HighlightID marks a highlight wrapper with its color.
type Span struct {
	Text        string
	HighlightID string
	Color       string
}

// Block is a block-level element holding inline spans.
type Block struct {
	Spans []Span
}

// Text returns the block's plain text: the concatenation of its spans.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Document is a parsed chapter.
type Document struct {
	Blocks []Block
}

// Parse builds a document from chapter source. Paragraphs are separated by
// blank lines; line breaks within a paragraph collapse to spaces, the way an
// inline renderer would lay them out. Each paragraph starts as one plain
// span.
func Parse(src string) *Document {
	d := &Document{}
	for _, para := range strings.Split(src, "\n\n") {
		lines := strings.Fields(strings.ReplaceAll(para, "\n", " "))
		text := strings.Join(lines, " ")
		if text == "" {
			continue
		}
		d.Blocks = append(d.Blocks, Block{Spans: []Span{{Text: text}}})
	}
	return d
}

// Segment identifies one span in document order, with its text. Segments are
// the "text nodes" re-anchoring walks.
type Segment struct {
	Block int
	Span  int
	Text  string
}

// Segments returns every span in document order.
func (d *Document) Segments() []Segment {
	var segs []Segment
	for bi := range d.Blocks {
		for si := range d.Blocks[bi].Spans {
			segs = append(segs, Segment{Block: bi, Span: si, Text: d.Blocks[bi].Spans[si].Text})
		}
	}
	return segs
}

// SegmentTexts returns the span texts in document order.
func (d *Document) SegmentTexts() []string {
	segs := d.Segments()
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.Text
	}
	return texts
}

// Loc resolves a plain-text range within a block to a single span.
type Loc struct {
	Span     int    // span index within the block
	Start    int    // offset within the span's text
	End      int    // offset within the span's text
	SpanText string // full text of the containing span
}

// Resolve maps [start,end) offsets in a block's plain text onto the single
// plain span that contains them. A range touching more than one span, or any
// part of an existing highlight span, fails with ErrCrossElement.
func (d *Document) Resolve(block, start, end int) (Loc, error) {
	if block < 0 || block >= len(d.Blocks) {
		return Loc{}, ErrOutOfRange
	}
	b := &d.Blocks[block]
	if start < 0 || end > len(b.Text()) || start >= end {
		return Loc{}, ErrOutOfRange
	}

	offset := 0
	for si, s := range b.Spans {
		next := offset + len(s.Text)
		if start >= offset && start < next {
			if end > next {
				return Loc{}, ErrCrossElement
			}
			if s.HighlightID != "" {
				return Loc{}, ErrCrossElement
			}
			return Loc{Span: si, Start: start - offset, End: end - offset, SpanText: s.Text}, nil
		}
		offset = next
	}

	return Loc{}, ErrOutOfRange
}

// Wrap surrounds [start,end) of a block's plain text with a highlight span
// carrying the given id and color. The range must resolve to a single plain
// span; the span is split into up to three parts.
func (d *Document) Wrap(block, start, end int, id, color string) error {
	loc, err := d.Resolve(block, start, end)
	if err != nil {
		return err
	}
	return d.WrapSegment(block, loc.Span, loc.Start, loc.End, id, color)
}

// WrapSegment surrounds [start,end) of one span with a highlight span. Used
// by re-anchoring, which addresses matches by segment rather than by block
// offsets.
func (d *Document) WrapSegment(block, span, start, end int, id, color string) error {
	if block < 0 || block >= len(d.Blocks) {
		return ErrOutOfRange
	}
	b := &d.Blocks[block]
	if span < 0 || span >= len(b.Spans) {
		return ErrOutOfRange
	}
	target := b.Spans[span]
	if target.HighlightID != "" {
		return ErrCrossElement
	}
	if start < 0 || end > len(target.Text) || start >= end {
		return ErrOutOfRange
	}

	var replaced []Span
	if start > 0 {
		replaced = append(replaced, Span{Text: target.Text[:start]})
	}
	replaced = append(replaced, Span{Text: target.Text[start:end], HighlightID: id, Color: color})
	if end < len(target.Text) {
		replaced = append(replaced, Span{Text: target.Text[end:]})
	}

	b.Spans = append(b.Spans[:span], append(replaced, b.Spans[span+1:]...)...)
	return nil
}

// Unwrap removes the highlight span with the given id, replacing it with its
// plain text in place and merging adjacent plain spans, preserving the
// surrounding structure. Reports whether the id was found.
func (d *Document) Unwrap(id string) bool {
	for bi := range d.Blocks {
		b := &d.Blocks[bi]
		for si := range b.Spans {
			if b.Spans[si].HighlightID != id {
				continue
			}
			b.Spans[si].HighlightID = ""
			b.Spans[si].Color = ""
			b.Spans = mergePlain(b.Spans)
			return true
		}
	}
	return false
}

// Relabel replaces a highlight span's id, e.g. when the remote store assigns
// a permanent id after an optimistic local commit. Reports whether the old
// id was found.
func (d *Document) Relabel(oldID, newID string) bool {
	for bi := range d.Blocks {
		for si := range d.Blocks[bi].Spans {
			if d.Blocks[bi].Spans[si].HighlightID == oldID {
				d.Blocks[bi].Spans[si].HighlightID = newID
				return true
			}
		}
	}
	return false
}

// PlainText returns the document's text with blocks separated by blank
// lines.
func (d *Document) PlainText() string {
	texts := make([]string, len(d.Blocks))
	for i := range d.Blocks {
		texts[i] = d.Blocks[i].Text()
	}
	return strings.Join(texts, "\n\n")
}

// HighlightCount returns the number of highlight spans in the document.
func (d *Document) HighlightCount() int {
	n := 0
	for bi := range d.Blocks {
		for _, s := range d.Blocks[bi].Spans {
			if s.HighlightID != "" {
				n++
			}
		}
	}
	return n
}

// mergePlain merges runs of adjacent plain spans into one.
func mergePlain(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		if len(out) > 0 && s.HighlightID == "" && out[len(out)-1].HighlightID == "" {
			out[len(out)-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
