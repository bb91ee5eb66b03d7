// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/example/pageturner/internal/ports/secondary"
)

// HighlightCache implements secondary.HighlightCache with SQLite.
type HighlightCache struct {
	db *sql.DB
}

// NewHighlightCache creates a new SQLite highlight cache.
func NewHighlightCache(db *sql.DB) *HighlightCache {
	return &HighlightCache{db: db}
}

// LoadAll retrieves the full highlight mapping, ordered by insertion within
// each chapter.
func (r *HighlightCache) LoadAll(ctx context.Context) (map[string][]*secondary.HighlightRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, chapter_id, text, color, position FROM highlights ORDER BY chapter_id, seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load highlights: %w", err)
	}
	defer rows.Close()

	mapping := make(map[string][]*secondary.HighlightRecord)
	for rows.Next() {
		var position sql.NullString
		record := &secondary.HighlightRecord{}
		if err := rows.Scan(&record.ID, &record.ChapterID, &record.Text, &record.Color, &position); err != nil {
			return nil, fmt.Errorf("failed to scan highlight: %w", err)
		}
		record.Position = position.String
		mapping[record.ChapterID] = append(mapping[record.ChapterID], record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate highlights: %w", err)
	}

	return mapping, nil
}

// Append adds a record to the end of its chapter bucket.
func (r *HighlightCache) Append(ctx context.Context, record *secondary.HighlightRecord) error {
	var position sql.NullString
	if record.Position != "" {
		position = sql.NullString{String: record.Position, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO highlights (id, chapter_id, text, color, position, seq)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM highlights WHERE chapter_id = ?))`,
		record.ID, record.ChapterID, record.Text, record.Color, position, record.ChapterID,
	)
	if err != nil {
		return fmt.Errorf("failed to append highlight: %w", err)
	}

	return nil
}

// Remove deletes a record from a chapter bucket by id. Unknown ids are a
// no-op.
func (r *HighlightCache) Remove(ctx context.Context, chapterID, highlightID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM highlights WHERE chapter_id = ? AND id = ?",
		chapterID, highlightID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove highlight: %w", err)
	}

	return nil
}

// ReplaceID swaps a temporary local id for the permanent remote one.
func (r *HighlightCache) ReplaceID(ctx context.Context, oldID, newID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE highlights SET id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		newID, oldID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace highlight id: %w", err)
	}

	return nil
}

// ReplaceAll overwrites the entire mapping in one transaction, preserving
// per-chapter insertion order.
func (r *HighlightCache) ReplaceAll(ctx context.Context, mapping map[string][]*secondary.HighlightRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM highlights"); err != nil {
		return fmt.Errorf("failed to clear highlights: %w", err)
	}

	// Stable chapter order keeps the write deterministic.
	chapters := make([]string, 0, len(mapping))
	for chapterID := range mapping {
		chapters = append(chapters, chapterID)
	}
	sort.Strings(chapters)

	for _, chapterID := range chapters {
		for seq, record := range mapping[chapterID] {
			var position sql.NullString
			if record.Position != "" {
				position = sql.NullString{String: record.Position, Valid: true}
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO highlights (id, chapter_id, text, color, position, seq) VALUES (?, ?, ?, ?, ?, ?)",
				record.ID, record.ChapterID, record.Text, record.Color, position, seq+1,
			)
			if err != nil {
				return fmt.Errorf("failed to insert highlight %s: %w", record.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit highlight mapping: %w", err)
	}

	return nil
}
