package storage

import "time"

// PaletteModel is the GORM model for palettes table
type PaletteModel struct {
	Colors      []PaletteColorModel   `gorm:"foreignKey:PaletteID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time             `gorm:"not null;index:idx_created_at"`
	Description string                `gorm:"not null;default:''"`
	ID          string                `gorm:"primaryKey"`
	Keywords    []PaletteKeywordModel `gorm:"foreignKey:PaletteID;constraint:OnDelete:CASCADE"`
	Mode        string                `gorm:"not null;default:'light';check:mode IN ('light','dark')"`
	Name        string                `gorm:"not null;index:idx_name"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PaletteModel) TableName() string { return "palettes" }

// PaletteColorModel is one ordered color of a palette
type PaletteColorModel struct {
	Color     string `gorm:"not null"`
	PaletteID string `gorm:"primaryKey"`
	Position  int    `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (PaletteColorModel) TableName() string { return "palette_colors" }

// PaletteKeywordModel is one ordered keyword of a palette
type PaletteKeywordModel struct {
	Keyword   string `gorm:"not null"`
	PaletteID string `gorm:"primaryKey"`
	Position  int    `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (PaletteKeywordModel) TableName() string { return "palette_keywords" }
