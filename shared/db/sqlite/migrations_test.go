package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func connectTestDB(t *testing.T, path string) *SQLiteDB {
	database := NewSQLiteDB(&SQLiteConfig{Path: path})
	if err := database.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	return database
}

func TestRunMigrations(t *testing.T) {
	database := connectTestDB(t, MemoryPath)
	defer database.Close()

	db := database.DB()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_migrations'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check schema_migrations table: %v", err)
	}
	if count != 1 {
		t.Errorf("schema_migrations table not created")
	}

	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='posts'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check posts table: %v", err)
	}
	if count != 1 {
		t.Errorf("posts table not created")
	}

	var version int
	var name string
	err = db.QueryRow("SELECT version, name FROM schema_migrations WHERE version = 1").Scan(&version, &name)
	if err != nil {
		t.Fatalf("Failed to query schema_migrations: %v", err)
	}
	if name != "create_posts_table" {
		t.Errorf("name = %q, want %q", name, "create_posts_table")
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database := connectTestDB(t, dbPath)
	database.Close()

	database = connectTestDB(t, dbPath)
	defer database.Close()

	var count int
	err := database.DB().QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = 1").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query schema_migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("migration recorded %d times, want 1", count)
	}
}

func TestPostsTableSchema(t *testing.T) {
	database := connectTestDB(t, MemoryPath)
	defer database.Close()

	db := database.DB()
	published := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := db.Exec(`
		INSERT INTO posts (id, title, content, author, publish_date)
		VALUES (?, ?, ?, ?, ?)
	`, "a", "Lorem ipsum", "dolor sit amet", "consectetur adipiscing elit", published)
	if err != nil {
		t.Fatalf("Failed to insert post: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO posts (id, title, content, author, publish_date)
		VALUES (?, ?, ?, ?, ?)
	`, "a", "Duplicate", "dolor sit amet", "consectetur adipiscing elit", published)
	if err == nil {
		t.Error("inserting a duplicate id should fail")
	}

	_, err = db.Exec(`
		INSERT INTO posts (id, title, content, author, publish_date)
		VALUES (?, ?, ?, ?, ?)
	`, "b", "", "dolor sit amet", "consectetur adipiscing elit", published)
	if err == nil {
		t.Error("inserting an empty title should fail")
	}

	var seq int
	var title string
	var publishDate time.Time
	err = db.QueryRow("SELECT seq, title, publish_date FROM posts WHERE id = ?", "a").Scan(&seq, &title, &publishDate)
	if err != nil {
		t.Fatalf("Failed to query post: %v", err)
	}

	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
	if title != "Lorem ipsum" {
		t.Errorf("title = %q, want %q", title, "Lorem ipsum")
	}
	if !publishDate.Equal(published) {
		t.Errorf("publish_date = %v, want %v", publishDate, published)
	}
}
