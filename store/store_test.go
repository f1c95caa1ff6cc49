package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrace/store"
)

// openTestStore opens a fresh archive under t.TempDir.
func openTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func record(id string, at time.Time) store.Record {
	return store.Record{
		ID:         id,
		Kind:       "bfs",
		Summary:    "bfs from A visited 3 of 3 vertices",
		EventCount: 7,
		Result:     json.RawMessage(`{"start":"A"}`),
		Final:      json.RawMessage(`{"current":""}`),
		CreatedAt:  at,
	}
}

func TestOpen_CreatesAndReopens(t *testing.T) {
	ctx := context.Background()
	s, path := openTestStore(t)

	_, err := os.Stat(path)
	require.NoError(t, err, "database file must exist")

	require.NoError(t, s.SaveOperation(ctx, record("op-1", time.Unix(100, 0))))
	require.NoError(t, s.Close())

	s2, err := store.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaveAndGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	at := time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC)
	want := record("op-1", at)
	require.NoError(t, s.SaveOperation(ctx, want))

	got, err := s.GetOperation(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.Summary, got.Summary)
	assert.Equal(t, want.EventCount, got.EventCount)
	assert.JSONEq(t, string(want.Result), string(got.Result))
	assert.JSONEq(t, string(want.Final), string(got.Final))
	assert.True(t, at.Equal(got.CreatedAt))
}

func TestSaveOperation_DuplicateKeepsFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	first := record("op-1", time.Unix(1, 0))
	second := record("op-1", time.Unix(2, 0))
	second.Summary = "overwritten"

	require.NoError(t, s.SaveOperation(ctx, first))
	require.NoError(t, s.SaveOperation(ctx, second))

	got, err := s.GetOperation(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, first.Summary, got.Summary)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaveOperation_Validation(t *testing.T) {
	s, _ := openTestStore(t)
	assert.Error(t, s.SaveOperation(context.Background(), store.Record{}))
}

func TestSaveOperation_EmptyJSONStoredAsNull(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	require.NoError(t, s.SaveOperation(ctx, store.Record{ID: "bare", Kind: "trie", CreatedAt: time.Unix(5, 0)}))
	got, err := s.GetOperation(ctx, "bare")
	require.NoError(t, err)
	assert.Equal(t, "null", string(got.Result))
	assert.Equal(t, "null", string(got.Final))
}

func TestGetOperation_NotFound(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.GetOperation(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListOperations_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	empty, err := s.ListOperations(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, s.SaveOperation(ctx, record("old", time.Unix(10, 0))))
	require.NoError(t, s.SaveOperation(ctx, record("new", time.Unix(30, 0))))
	require.NoError(t, s.SaveOperation(ctx, record("mid", time.Unix(20, 0))))
	// Same instant as "mid": later insert lists first.
	require.NoError(t, s.SaveOperation(ctx, record("mid2", time.Unix(20, 0))))

	all, err := s.ListOperations(ctx, 0)
	require.NoError(t, err)
	var ids []string
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"new", "mid2", "mid", "old"}, ids)

	top, err := s.ListOperations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "new", top[0].ID)
	assert.Equal(t, "mid2", top[1].ID)
}
