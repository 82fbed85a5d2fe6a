package storage

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

// TestGormStorage runs against a real PostgreSQL; set TEST_DATABASE_URL to
// enable it.
func TestGormStorage(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewGormStorage(db)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })

	runStorageSuite(t, Namespace(s, "test-"+uuid.NewString()))
}
