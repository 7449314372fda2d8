package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "palettes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testPalette(id string, createdAt time.Time) domain.SavedPalette {
	return domain.SavedPalette{
		Colors:      []string{"#001122", "#334455", "#667788"},
		CreatedAt:   createdAt,
		Description: "Deep sea tones",
		ID:          id,
		Keywords:    []string{"ocean", "Calm"},
		Mode:        domain.ModeDark,
		Name:        "Abyss " + id,
	}
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	palette := testPalette("p1", created)

	require.NoError(t, repo.Create(ctx, palette))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, palette.Colors, got.Colors)
	assert.Equal(t, palette.Keywords, got.Keywords)
	assert.Equal(t, palette.Name, got.Name)
	assert.Equal(t, palette.Description, got.Description)
	assert.Equal(t, palette.Mode, got.Mode)
	assert.True(t, created.Equal(got.CreatedAt), "createdAt %v", got.CreatedAt)
}

func TestSQLiteRepository_CreateDuplicateID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testPalette("p1", time.Now())))

	err := repo.Create(ctx, testPalette("p1", time.Now()))

	assert.ErrorIs(t, err, domain.ErrPaletteExists)
}

func TestSQLiteRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPaletteNotFound)
}

func TestSQLiteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testPalette("old", base)))
	require.NoError(t, repo.Create(ctx, testPalette("new", base.Add(time.Hour))))

	palettes, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, palettes, 2)
	assert.Equal(t, "new", palettes[0].ID)
	assert.Equal(t, "old", palettes[1].ID)
	assert.Len(t, palettes[1].Colors, 3)
}

func TestSQLiteRepository_UpdateReplacesChildren(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	created := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testPalette("p1", created)))

	updated := testPalette("p1", time.Now())
	updated.Name = "Shallows"
	updated.Colors = []string{"#abc"}
	updated.Keywords = nil
	updated.Mode = domain.ModeLight

	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Shallows", got.Name)
	assert.Equal(t, []string{"#abc"}, got.Colors)
	assert.Empty(t, got.Keywords)
	assert.Equal(t, domain.ModeLight, got.Mode)
	assert.True(t, created.Equal(got.CreatedAt), "createdAt is preserved")
}

func TestSQLiteRepository_UpdateNotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Update(context.Background(), testPalette("ghost", time.Now()))

	assert.ErrorIs(t, err, domain.ErrPaletteNotFound)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testPalette("p1", time.Now())))

	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err := repo.Get(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrPaletteNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "p1"), domain.ErrPaletteNotFound)

	var orphans int64
	require.NoError(t, repo.db.Model(&PaletteColorModel{}).Where("palette_id = ?", "p1").Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSQLiteRepository_InvalidModeRejected(t *testing.T) {
	repo := newTestRepository(t)
	palette := testPalette("p1", time.Now())
	palette.Mode = "sepia"

	assert.Error(t, repo.Create(context.Background(), palette))
}

func TestWithRetry_ReturnsNonBusyErrorsImmediately(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return assert.AnError
	}, 3)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
