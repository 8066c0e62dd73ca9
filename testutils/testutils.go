// Package testutils provides common utilities for testing across the
// todosweep project
package testutils

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB creates an in-memory SQLite database for testing
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	return db
}

// CloseTestDB closes the test database connection
func CloseTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get SQL DB from GORM: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		t.Fatalf("Failed to close test database: %v", err)
	}
}

// TempFile creates a temporary file for testing
func TempFile(t *testing.T, prefix string) *os.File {
	t.Helper()

	file, err := os.CreateTemp("", prefix)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	t.Cleanup(func() {
		_ = file.Close()           // Best effort close
		_ = os.Remove(file.Name()) // Best effort cleanup
	})

	return file
}

// TempDir creates a temporary directory for testing
func TempDir(t *testing.T, prefix string) string {
	t.Helper()

	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		_ = os.RemoveAll(dir) // Best effort cleanup
	})

	return dir
}
