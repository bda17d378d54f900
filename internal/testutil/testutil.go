package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/repository/sqlstore"
	"github.com/attager/a2a-threat-center/migrations"
	_ "modernc.org/sqlite"
)

// SeedTime is the reference clock used by SeededDB
var SeedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// NewTestDB creates a migrated in-memory SQLite database for testing
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	migrationsFS, err := migrations.GetFS("sqlite")
	if err != nil {
		t.Fatalf("Failed to load migrations: %v", err)
	}
	if _, err := sqlstore.RunMigrations(db, "sqlite", migrationsFS); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { CleanupDB(db) })
	return db
}

// SeededDB returns a test database populated with the demo data at SeedTime
func SeededDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewTestDB(t)
	if _, err := sqlstore.Seed(context.Background(), db, "sqlite", SeedTime); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return db
}

// NewTestLogger returns a logger that only emits errors
func NewTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

// CleanupDB closes the database connection
func CleanupDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}
