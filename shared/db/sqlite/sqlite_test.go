package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNewSQLiteDB(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "explicit path",
			path: "/tmp/blogposts.db",
			want: "/tmp/blogposts.db",
		},
		{
			name: "empty path falls back to memory",
			want: MemoryPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := NewSQLiteDB(&SQLiteConfig{Path: tt.path})

			if database.dbPath != tt.want {
				t.Errorf("dbPath = %v, want %v", database.dbPath, tt.want)
			}
		})
	}
}

func TestSQLiteDB_Connect(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "file", path: filepath.Join(t.TempDir(), "test.db")},
		{name: "memory", path: MemoryPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := NewSQLiteDB(&SQLiteConfig{Path: tt.path})

			if err := database.Connect(context.Background()); err != nil {
				t.Fatalf("Connect() error = %v", err)
			}
			defer database.Close()

			if database.DB() == nil {
				t.Error("DB() returned nil after Connect()")
			}

			if err := database.Connect(context.Background()); err == nil {
				t.Error("Connect() should return error when already connected")
			}
		})
	}
}

func TestSQLiteDB_Close(t *testing.T) {
	database := NewSQLiteDB(&SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")})

	if err := database.Close(); err != nil {
		t.Errorf("Close() without Connect() error = %v", err)
	}

	if err := database.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if err := database.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if database.DB() != nil {
		t.Error("DB() should return nil after Close()")
	}
}
