package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/ugcctl/internal/database"
)

// SetupTestDB creates a migrated in-memory database closed at test cleanup
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}
