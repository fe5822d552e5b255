package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testSchema mirrors the MySQL schema in SQLite form: same tables, same
// composite keys, so the repositories run unchanged in tests.
const testSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE playlists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	user_id INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE songs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	genre TEXT,
	duration INTEGER,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE artists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	country TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE playlist_songs (
	playlist_id INTEGER NOT NULL,
	song_id INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	PRIMARY KEY (playlist_id, song_id)
);
CREATE TABLE song_artists (
	song_id INTEGER NOT NULL,
	artist_id INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	PRIMARY KEY (song_id, artist_id)
);
`

// setupTestDB creates an in-memory SQLite database with the catalog schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if _, err := db.Exec(testSchema); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
