package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
	portsmocks "tinta/internal/ports/mocks"
	servicesmocks "tinta/internal/services/mocks"
)

func TestLibraryService_ExportYAML(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.SavedPalette{{
		Colors:    []string{"#111"},
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		ID:        "p1",
		Keywords:  []string{"k"},
		Mode:      domain.ModeDark,
		Name:      "Night",
	}}, nil)

	var buf bytes.Buffer
	n, err := NewLibraryService(repo, nil, nil).Export(context.Background(), &buf, LibraryYAML)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	out := buf.String()
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "name: Night")
	assert.Contains(t, out, "createdAt: 2025-01-02T03:04:05Z")
}

func TestLibraryService_ExportJSON(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.SavedPalette{{ID: "p1", Name: "x", Mode: domain.ModeLight}}, nil)

	var buf bytes.Buffer
	_, err := NewLibraryService(repo, nil, nil).Export(context.Background(), &buf, LibraryJSON)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"id": "p1"`)
}

func TestLibraryService_Import(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	ids := servicesmocks.NewMockIDGenerator(t)

	input := `
version: 1
palettes:
  - id: keep
    name: Kept
    mode: dark
    colors: ["#111", "", "#222"]
  - name: Fresh
    colors: ["#abc"]
  - id: dupe
    name: Existing
    mode: light
    colors: ["#fff"]
  - id: broken
    name: Broken
    mode: light
    colors: ["red"]
  - id: sepia
    name: Sepia
    mode: sepia
    colors: ["#fff"]
`

	ids.EXPECT().NewID().Return("generated")
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p domain.SavedPalette) bool {
		return p.ID == "keep" && assert.ObjectsAreEqual([]string{"#111", "#222"}, p.Colors)
	})).Return(nil)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p domain.SavedPalette) bool {
		return p.ID == "generated" && p.Mode == domain.DefaultMode && p.CreatedAt.Equal(fixedNow)
	})).Return(nil)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p domain.SavedPalette) bool {
		return p.ID == "dupe"
	})).Return(domain.ErrPaletteExists)

	result, err := NewLibraryService(repo, ids, fixedClock).Import(context.Background(), strings.NewReader(input), LibraryYAML)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Problems, 2)
	assert.Contains(t, result.Problems[0], "Broken")
	assert.Contains(t, result.Problems[1], "Sepia")
}

func TestLibraryService_ImportMalformed(t *testing.T) {
	_, err := NewLibraryService(portsmocks.NewMockPaletteRepository(t), nil, nil).
		Import(context.Background(), strings.NewReader("{not json"), LibraryJSON)
	assert.Error(t, err)
}

func TestParseLibraryFormat(t *testing.T) {
	f, err := ParseLibraryFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, LibraryYAML, f)

	_, err = ParseLibraryFormat("toml")
	assert.Error(t, err)

	assert.Equal(t, LibraryJSON, FormatFromPath("backup.JSON"))
	assert.Equal(t, LibraryYAML, FormatFromPath("backup.yaml"))
}
