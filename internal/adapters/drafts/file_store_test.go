package drafts

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "draft.json"))
	store.now = func() time.Time { return time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC) }
	return store
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	draft, err := store.Load()

	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestFileStore_SaveLoadClear(t *testing.T) {
	store := newTestStore(t)
	fields := domain.PaletteFormFields{
		Colors:   []string{"#111", "", "#333"},
		Keywords: []string{"draft"},
		Mode:     domain.ModeDark,
		Name:     "Half done",
	}

	require.NoError(t, store.Save(fields))

	draft, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, fields, *draft)

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"color3": "#333"`)

	require.NoError(t, store.Clear())
	draft, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, draft)

	assert.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestFileStore_SaveShrinksFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.PaletteFormFields{Name: "a very long draft name", Colors: []string{"#111", "#222", "#333"}}))
	require.NoError(t, store.Save(domain.PaletteFormFields{Name: "b", Colors: []string{"#1"}}))

	draft, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "b", draft.Name)
	assert.Equal(t, []string{"#1"}, draft.Colors)
}

func TestFileStore_ConcurrentSaves(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Save(domain.PaletteFormFields{Name: "same", Colors: []string{"#abc"}}))
		}()
	}
	wg.Wait()

	draft, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "same", draft.Name)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0755))
	require.NoError(t, os.WriteFile(store.path, []byte("{nope"), 0644))

	_, err := store.Load()

	assert.Error(t, err)
}
