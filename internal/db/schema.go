package db

// SchemaSQL is the complete schema for fresh pageturner installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests use it via GetSchemaSQL() so test schemas cannot drift from what
// production creates. Do not hardcode CREATE TABLE statements in test files.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Highlights (local durable cache of the user's highlight mapping)
-- seq preserves insertion order within a chapter bucket.
CREATE TABLE IF NOT EXISTS highlights (
	id TEXT PRIMARY KEY,
	chapter_id TEXT NOT NULL,
	text TEXT NOT NULL,
	color TEXT NOT NULL CHECK(color IN ('yellow', 'green', 'blue', 'pink')) DEFAULT 'yellow',
	position TEXT,
	seq INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_highlights_chapter ON highlights(chapter_id, seq);
`

// InitSchema creates the schema on a fresh install and runs any pending
// migrations on an existing one.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create modern schema directly and mark all
		// migrations as applied so they never run.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL. Tests use this to build
// in-memory databases that match production exactly.
func GetSchemaSQL() string {
	return SchemaSQL
}
