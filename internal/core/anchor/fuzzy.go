package anchor

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FindFuzzy locates an approximate occurrence of target when the exact text
// no longer appears, e.g. the chapter was edited after the highlight was
// made. It is opt-in; default re-anchoring skips records that no longer
// match exactly.
//
// Bitap matching caps the probe length at MatchMaxBits, so long targets are
// located by their leading characters and the match is extended to the
// target's full length, clamped to the segment.
func FindFuzzy(segments []string, target string) (Match, bool) {
	if target == "" {
		return Match{}, false
	}

	dmp := diffmatchpatch.New()

	probe := target
	if len(probe) > dmp.MatchMaxBits {
		probe = probe[:dmp.MatchMaxBits]
	}

	for i, seg := range segments {
		loc := dmp.MatchMain(seg, probe, 0)
		if loc == -1 {
			continue
		}
		end := loc + len(target)
		if end > len(seg) {
			end = len(seg)
		}
		return Match{Segment: i, Start: loc, End: end}, true
	}

	return Match{}, false
}
