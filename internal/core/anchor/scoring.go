package anchor

import "github.com/example/pageturner/internal/core/highlight"

// FindScored picks the occurrence of target whose surrounding context best
// agrees with the position descriptor captured when the highlight was made.
// With no descriptor, or a single occurrence, it behaves like FindFirst.
//
// Scoring compares the text immediately before and after each candidate with
// the prefix/affix implied by the descriptor, accumulating the length of the
// matching run on each side. Ties keep the earlier occurrence.
func FindScored(segments []string, target string, pos *highlight.Position) (Match, bool) {
	matches := FindAll(segments, target)
	if len(matches) == 0 {
		return Match{}, false
	}
	if pos == nil || len(matches) == 1 {
		return matches[0], true
	}

	// Context around the original selection, from the descriptor.
	wantPrefix := descriptorPrefix(pos)
	wantAffix := descriptorAffix(pos)

	best := matches[0]
	bestScore := -1
	for _, m := range matches {
		seg := segments[m.Segment]
		score := commonSuffixLen(wantPrefix, seg[:m.Start]) + commonPrefixLen(wantAffix, seg[m.End:])
		if score > bestScore {
			best = m
			bestScore = score
		}
	}

	return best, true
}

func descriptorPrefix(pos *highlight.Position) string {
	if pos.StartOffset > 0 && pos.StartOffset <= len(pos.StartContainerText) {
		return pos.StartContainerText[:pos.StartOffset]
	}
	return ""
}

func descriptorAffix(pos *highlight.Position) string {
	if pos.EndOffset >= 0 && pos.EndOffset <= len(pos.EndContainerText) {
		return pos.EndContainerText[pos.EndOffset:]
	}
	return ""
}

// commonSuffixLen returns the length of the longest common suffix of a and b.
func commonSuffixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
