package cmd

// PalettesCmd manages saved palettes
type PalettesCmd struct {
	Add       PalettesAddCmd       `cmd:"add" help:"Add a palette"`
	Copy      PalettesCopyCmd      `cmd:"copy" help:"Copy palette colors to the clipboard"`
	Del       PalettesDelCmd       `cmd:"del" aliases:"rm" help:"Delete a palette"`
	Duplicate PalettesDuplicateCmd `cmd:"duplicate" help:"Create a copy of a palette"`
	Export    PalettesExportCmd    `cmd:"export" help:"Export all palettes to a YAML or JSON file"`
	Import    PalettesImportCmd    `cmd:"import" help:"Import palettes from a YAML or JSON file"`
	List      PalettesListCmd      `cmd:"list" aliases:"ls" help:"List palettes" default:"1"`
	Open      PalettesOpenCmd      `cmd:"open" help:"Open a palette on coolors.co"`
	Show      PalettesShowCmd      `cmd:"show" help:"Show a palette"`
}
