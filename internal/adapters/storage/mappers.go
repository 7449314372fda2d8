package storage

import (
	"sort"

	"tinta/internal/domain"
)

// paletteModelToDomain converts a PaletteModel (GORM) to domain.SavedPalette
func paletteModelToDomain(m PaletteModel) domain.SavedPalette {
	colors := append([]PaletteColorModel(nil), m.Colors...)
	sort.Slice(colors, func(i, j int) bool { return colors[i].Position < colors[j].Position })
	keywords := append([]PaletteKeywordModel(nil), m.Keywords...)
	sort.Slice(keywords, func(i, j int) bool { return keywords[i].Position < keywords[j].Position })

	p := domain.SavedPalette{
		Colors:      make([]string, len(colors)),
		CreatedAt:   m.CreatedAt,
		Description: m.Description,
		ID:          m.ID,
		Keywords:    make([]string, len(keywords)),
		Mode:        domain.Mode(m.Mode),
		Name:        m.Name,
	}
	for i, c := range colors {
		p.Colors[i] = c.Color
	}
	for i, k := range keywords {
		p.Keywords[i] = k.Keyword
	}
	return p
}

// domainToPaletteModel converts a domain.SavedPalette to PaletteModel (GORM)
func domainToPaletteModel(p domain.SavedPalette) PaletteModel {
	return PaletteModel{
		Colors:      colorModels(p.ID, p.Colors),
		CreatedAt:   p.CreatedAt,
		Description: p.Description,
		ID:          p.ID,
		Keywords:    keywordModels(p.ID, p.Keywords),
		Mode:        string(p.Mode),
		Name:        p.Name,
	}
}

func colorModels(paletteID string, colors []string) []PaletteColorModel {
	out := make([]PaletteColorModel, len(colors))
	for i, c := range colors {
		out[i] = PaletteColorModel{Color: c, PaletteID: paletteID, Position: i}
	}
	return out
}

func keywordModels(paletteID string, keywords []string) []PaletteKeywordModel {
	out := make([]PaletteKeywordModel, len(keywords))
	for i, k := range keywords {
		out[i] = PaletteKeywordModel{Keyword: k, PaletteID: paletteID, Position: i}
	}
	return out
}
