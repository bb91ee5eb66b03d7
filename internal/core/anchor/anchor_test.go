package anchor

import (
	"testing"

	"github.com/example/pageturner/internal/core/highlight"
)

func TestFindFirst(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		target   string
		want     Match
		wantOK   bool
	}{
		{
			name:     "substring within a single segment",
			segments: []string{"The quick brown fox"},
			target:   "quick brown",
			want:     Match{Segment: 0, Start: 4, End: 15},
			wantOK:   true,
		},
		{
			name:     "first segment wins across segments",
			segments: []string{"nothing here", "the fox jumps", "the fox sleeps"},
			target:   "fox",
			want:     Match{Segment: 1, Start: 4, End: 7},
			wantOK:   true,
		},
		{
			name:     "duplicate occurrences report only the first",
			segments: []string{"fox fox fox"},
			target:   "fox",
			want:     Match{Segment: 0, Start: 0, End: 3},
			wantOK:   true,
		},
		{
			name:     "target missing from all segments",
			segments: []string{"The quick brown fox"},
			target:   "lazy dog",
			wantOK:   false,
		},
		{
			name:     "target straddling two segments is not found",
			segments: []string{"The quick", "brown fox"},
			target:   "quick brown",
			wantOK:   false,
		},
		{
			name:     "empty target never matches",
			segments: []string{"The quick brown fox"},
			target:   "",
			wantOK:   false,
		},
		{
			name:     "no segments",
			segments: nil,
			target:   "fox",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindFirst(tt.segments, tt.target)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("match = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindFirst_OffsetsCoverExactSubstring(t *testing.T) {
	segments := []string{"The quick brown fox"}
	m, ok := FindFirst(segments, "quick brown")
	if !ok {
		t.Fatal("expected a match")
	}
	if got := segments[m.Segment][m.Start:m.End]; got != "quick brown" {
		t.Errorf("offsets select %q, want %q", got, "quick brown")
	}
}

func TestFindAll(t *testing.T) {
	segments := []string{"fox fox", "no match", "fox"}
	matches := FindAll(segments, "fox")

	want := []Match{
		{Segment: 0, Start: 0, End: 3},
		{Segment: 0, Start: 4, End: 7},
		{Segment: 2, Start: 0, End: 3},
	}

	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matches), len(want))
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("match[%d] = %+v, want %+v", i, matches[i], want[i])
		}
	}
}

func TestFindAll_OverlappingOccurrences(t *testing.T) {
	matches := FindAll([]string{"aaa"}, "aa")
	want := []Match{
		{Segment: 0, Start: 0, End: 2},
		{Segment: 0, Start: 1, End: 3},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matches), len(want))
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("match[%d] = %+v, want %+v", i, matches[i], want[i])
		}
	}
}

func TestFindScored(t *testing.T) {
	// The same word appears twice; the descriptor's context points at the
	// second occurrence.
	segments := []string{"the fox ran. a red fox slept."}

	pos := &highlight.Position{
		StartContainerText: "the fox ran. a red fox slept.",
		StartOffset:        19,
		EndContainerText:   "the fox ran. a red fox slept.",
		EndOffset:          22,
	}

	m, ok := FindScored(segments, "fox", pos)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start != 19 || m.End != 22 {
		t.Errorf("match = %+v, want Start=19 End=22", m)
	}
}

func TestFindScored_NoDescriptorFallsBackToFirst(t *testing.T) {
	segments := []string{"fox fox fox"}

	m, ok := FindScored(segments, "fox", nil)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start != 0 || m.End != 3 {
		t.Errorf("match = %+v, want first occurrence", m)
	}
}

func TestFindScored_NoMatch(t *testing.T) {
	_, ok := FindScored([]string{"nothing here"}, "fox", nil)
	if ok {
		t.Error("expected no match")
	}
}

func TestFindFuzzy(t *testing.T) {
	// Chapter text drifted by one character since the highlight was made.
	segments := []string{"The quikc brown fox jumps"}

	m, ok := FindFuzzy(segments, "quick brown")
	if !ok {
		t.Fatal("expected a fuzzy match")
	}
	if m.Segment != 0 {
		t.Errorf("segment = %d, want 0", m.Segment)
	}
	if m.Start < 0 || m.End > len(segments[0]) || m.Start >= m.End {
		t.Errorf("match %+v out of bounds for segment of length %d", m, len(segments[0]))
	}
}

func TestFindFuzzy_NoPlausibleMatch(t *testing.T) {
	_, ok := FindFuzzy([]string{"completely unrelated content"}, "zzzzzzzzzz")
	if ok {
		t.Error("expected no fuzzy match")
	}
}

func TestFindFuzzy_LongTarget(t *testing.T) {
	long := "a very long highlighted passage that exceeds the bitap probe length limit"
	segments := []string{"prefix text. " + long + " suffix text."}

	m, ok := FindFuzzy(segments, long)
	if !ok {
		t.Fatal("expected a match for long target")
	}
	if got := segments[0][m.Start:m.End]; got != long {
		t.Errorf("offsets select %q, want %q", got, long)
	}
}
