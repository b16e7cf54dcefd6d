// Package storetest builds in-memory stores for tests.
package storetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pcote/learningmachine/internal/store"
)

// New returns a migrated Store backed by an in-memory sqlite database that
// lives for the duration of the test.
func New(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(sqlite.Open(":memory:"))

	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := s.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return s
}
