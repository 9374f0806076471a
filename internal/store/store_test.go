package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "names.db"))
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func result(input, first, last string) nameparts.Result {
	return nameparts.Result{
		Input:  input,
		Record: nameparts.NameRecord{FirstName: first, LastName: last, LastNameBase: last},
	}
}

func TestSaveAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)

	id, err := s.Save(ctx, result("John Smith", "John", "Smith"))
	require.NoError(t, err)
	assert.Positive(t, id)

	require.NoError(t, s.SaveAll(ctx, []nameparts.Result{
		result("Jane Doe", "Jane", "Doe"),
		result("Ann smith", "Ann", "smith"),
	}))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ann smith", entries[0].Input)
	assert.Equal(t, "Jane Doe", entries[1].Input)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), entries[0].CreatedAt)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFindByLastName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.SaveAll(ctx, []nameparts.Result{
		result("John Smith", "John", "Smith"),
		result("Jane Doe", "Jane", "Doe"),
		result("Ann smith", "Ann", "smith"),
	}))

	entries, err := s.FindByLastName(ctx, "SMITH")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "John", entries[0].Record.FirstName)
	assert.Equal(t, "Ann", entries[1].Record.FirstName)
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "names.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Save(ctx, result("John Smith", "John", "Smith"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClosedStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "names.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Save(ctx, result("John Smith", "John", "Smith"))
	require.ErrorIs(t, err, ErrClosed)
	_, err = s.List(ctx, 0)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Close(), ErrClosed)
}
