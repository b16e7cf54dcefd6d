package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pcote/learningmachine/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())

	return s
}

// exerciseID looks up the generated id for the only exercise matching the
// given question, so tests don't depend on autoincrement behavior.
func exerciseID(t *testing.T, s *Store, question string) uint {
	t.Helper()

	var exercise models.Exercise
	require.NoError(t, s.db.Where("question = ?", question).First(&exercise).Error)

	return exercise.ID
}

func resourceID(t *testing.T, s *Store, caption string) uint {
	t.Helper()

	var resource models.Resource
	require.NoError(t, s.db.Where("caption = ?", caption).First(&resource).Error)

	return resource.ID
}

func countRows(t *testing.T, s *Store, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, s.db.Model(model).Where(query, args...).Count(&count).Error)

	return count
}
