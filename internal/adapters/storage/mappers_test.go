package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinta/internal/domain"
)

func TestPaletteModelToDomain_SortsChildrenByPosition(t *testing.T) {
	m := PaletteModel{
		Colors: []PaletteColorModel{
			{Color: "#222", Position: 1},
			{Color: "#111", Position: 0},
		},
		ID: "p1",
		Keywords: []PaletteKeywordModel{
			{Keyword: "b", Position: 1},
			{Keyword: "a", Position: 0},
		},
		Mode: "dark",
	}

	p := paletteModelToDomain(m)

	assert.Equal(t, []string{"#111", "#222"}, p.Colors)
	assert.Equal(t, []string{"a", "b"}, p.Keywords)
	assert.Equal(t, domain.ModeDark, p.Mode)
}

func TestDomainToPaletteModel_AssignsPositions(t *testing.T) {
	m := domainToPaletteModel(domain.SavedPalette{ID: "p1", Colors: []string{"#1", "#2"}})

	assert.Equal(t, []PaletteColorModel{
		{Color: "#1", PaletteID: "p1", Position: 0},
		{Color: "#2", PaletteID: "p1", Position: 1},
	}, m.Colors)
	assert.Empty(t, m.Keywords)
}
