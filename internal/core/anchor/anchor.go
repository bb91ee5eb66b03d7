// Package anchor locates previously saved highlight text inside freshly
// rendered chapter content. The content is presented as an ordered sequence
// of text segments; anchoring is a pure string search with no knowledge of
// how the segments are rendered.
package anchor

import "strings"

// Match identifies a literal occurrence of a target string: the index of the
// containing segment plus byte offsets within that segment.
type Match struct {
	Segment int
	Start   int
	End     int
}

// FindFirst scans segments in order and returns the first literal occurrence
// of target. If the same text appears multiple times, only the first
// occurrence is reported. Returns false when no single segment contains the
// full target (for example when the original selection straddled two inline
// elements, or the content changed since the highlight was made).
func FindFirst(segments []string, target string) (Match, bool) {
	if target == "" {
		return Match{}, false
	}

	for i, seg := range segments {
		if idx := strings.Index(seg, target); idx != -1 {
			return Match{Segment: i, Start: idx, End: idx + len(target)}, true
		}
	}

	return Match{}, false
}

// FindAll returns every literal occurrence of target across all segments,
// in document order. Occurrences never span segment boundaries.
func FindAll(segments []string, target string) []Match {
	var matches []Match
	if target == "" {
		return matches
	}

	for i, seg := range segments {
		searchStart := 0
		for {
			idx := strings.Index(seg[searchStart:], target)
			if idx == -1 {
				break
			}
			start := searchStart + idx
			matches = append(matches, Match{Segment: i, Start: start, End: start + len(target)})
			searchStart = start + 1
			if searchStart >= len(seg) {
				break
			}
		}
	}

	return matches
}
