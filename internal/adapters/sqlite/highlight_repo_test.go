package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/pageturner/internal/adapters/sqlite"
	"github.com/example/pageturner/internal/ports/secondary"
)

func TestHighlightCache_AppendAndLoadAll(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	records := []*secondary.HighlightRecord{
		record("h1", "chapter-1", "quick brown", "yellow"),
		record("h2", "chapter-1", "lazy dog", "green"),
		record("h3", "chapter-2", "once upon", "pink"),
	}
	for _, r := range records {
		if err := cache.Append(ctx, r); err != nil {
			t.Fatalf("Append(%s) failed: %v", r.ID, err)
		}
	}

	mapping, err := cache.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(mapping) != 2 {
		t.Fatalf("got %d chapters, want 2", len(mapping))
	}

	ch1 := mapping["chapter-1"]
	if len(ch1) != 2 {
		t.Fatalf("chapter-1 has %d records, want 2", len(ch1))
	}
	// Insertion order within the bucket.
	if ch1[0].ID != "h1" || ch1[1].ID != "h2" {
		t.Errorf("chapter-1 order = [%s, %s], want [h1, h2]", ch1[0].ID, ch1[1].ID)
	}
	if ch1[0].Text != "quick brown" || ch1[0].Color != "yellow" {
		t.Errorf("record h1 = %+v", ch1[0])
	}

	if len(mapping["chapter-2"]) != 1 {
		t.Errorf("chapter-2 has %d records, want 1", len(mapping["chapter-2"]))
	}
}

func TestHighlightCache_PositionRoundTrip(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	withPos := record("h1", "chapter-1", "quick brown", "yellow")
	withPos.Position = `{"startContainerText":"The quick brown fox","startOffset":4,"endContainerText":"The quick brown fox","endOffset":15}`
	withoutPos := record("h2", "chapter-1", "fox", "blue")

	for _, r := range []*secondary.HighlightRecord{withPos, withoutPos} {
		if err := cache.Append(ctx, r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	mapping, err := cache.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	got := mapping["chapter-1"]
	if got[0].Position != withPos.Position {
		t.Errorf("position = %q, want %q", got[0].Position, withPos.Position)
	}
	if got[1].Position != "" {
		t.Errorf("position = %q, want empty", got[1].Position)
	}
}

func TestHighlightCache_Remove(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	if err := cache.Append(ctx, record("h1", "chapter-1", "quick brown", "yellow")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := cache.Remove(ctx, "chapter-1", "h1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	mapping, err := cache.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(mapping["chapter-1"]) != 0 {
		t.Errorf("chapter-1 still has %d records", len(mapping["chapter-1"]))
	}

	// Removing again is a no-op, not an error.
	if err := cache.Remove(ctx, "chapter-1", "h1"); err != nil {
		t.Errorf("second Remove failed: %v", err)
	}
}

func TestHighlightCache_RemoveScopedToChapter(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	if err := cache.Append(ctx, record("h1", "chapter-1", "quick brown", "yellow")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Wrong chapter: the record must survive.
	if err := cache.Remove(ctx, "chapter-2", "h1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	mapping, _ := cache.LoadAll(ctx)
	if len(mapping["chapter-1"]) != 1 {
		t.Error("record was removed through the wrong chapter bucket")
	}
}

func TestHighlightCache_ReplaceID(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	if err := cache.Append(ctx, record("1700000000000000000", "chapter-1", "quick brown", "yellow")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := cache.ReplaceID(ctx, "1700000000000000000", "srv-42"); err != nil {
		t.Fatalf("ReplaceID failed: %v", err)
	}

	mapping, _ := cache.LoadAll(ctx)
	got := mapping["chapter-1"]
	if len(got) != 1 || got[0].ID != "srv-42" {
		t.Errorf("records = %+v, want single record with id srv-42", got)
	}
}

func TestHighlightCache_ReplaceAll(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	// Seed with state that must be fully overwritten.
	if err := cache.Append(ctx, record("stale", "chapter-9", "old text", "blue")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	mapping := map[string][]*secondary.HighlightRecord{
		"chapter-1": {
			record("h1", "chapter-1", "quick brown", "yellow"),
			record("h2", "chapter-1", "lazy dog", "green"),
		},
		"chapter-2": {
			record("h3", "chapter-2", "once upon", "pink"),
		},
	}

	if err := cache.ReplaceAll(ctx, mapping); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	loaded, err := cache.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("got %d chapters, want 2 (stale chapter must be gone)", len(loaded))
	}
	ch1 := loaded["chapter-1"]
	if len(ch1) != 2 || ch1[0].ID != "h1" || ch1[1].ID != "h2" {
		t.Errorf("chapter-1 = %+v, want [h1, h2] in order", ch1)
	}
}

// Round-trip property: replacing the mapping and reloading reproduces it.
func TestHighlightCache_RoundTrip(t *testing.T) {
	testDB := setupTestDB(t)
	cache := sqlite.NewHighlightCache(testDB)
	ctx := context.Background()

	mapping := map[string][]*secondary.HighlightRecord{
		"chapter-1": {
			record("a", "chapter-1", "one", "yellow"),
			record("b", "chapter-1", "two", "green"),
			record("c", "chapter-1", "three", "blue"),
		},
	}

	if err := cache.ReplaceAll(ctx, mapping); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	loaded, err := cache.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	got := loaded["chapter-1"]
	want := mapping["chapter-1"]
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if *got[i] != *want[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
