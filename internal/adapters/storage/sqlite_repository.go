package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/paths"
	"tinta/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.PaletteRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.PaletteRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the tinta logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TINTA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the palette database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI and CLI commands share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&PaletteModel{}, &PaletteColorModel{}, &PaletteKeywordModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate palette schema: %w", err)
		}
	}

	logging.Logger.Debug("Palette database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath opens the database under a tinta home directory
func NewSQLiteRepositoryForPath(tintaHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(tintaHomePath, "palettes.db"))
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns one palette with its colors and keywords
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.SavedPalette, error) {
	var model PaletteModel

	err := withRetry(func() error {
		return withChildren(r.db.WithContext(ctx)).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("palette %s: %w", id, domain.ErrPaletteNotFound)
		}
		return nil, err
	}

	palette := paletteModelToDomain(model)
	return &palette, nil
}

// List returns every palette, newest first
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.SavedPalette, error) {
	var models []PaletteModel

	err := withRetry(func() error {
		return withChildren(r.db.WithContext(ctx)).
			Order("created_at DESC").
			Order("name ASC").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	palettes := make([]domain.SavedPalette, len(models))
	for i, m := range models {
		palettes[i] = paletteModelToDomain(m)
	}
	return palettes, nil
}

// Create inserts a new palette. An existing id yields domain.ErrPaletteExists.
func (r *SQLiteRepository) Create(ctx context.Context, palette domain.SavedPalette) error {
	model := domainToPaletteModel(palette)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&PaletteModel{}).Where("id = ?", palette.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("palette %s: %w", palette.ID, domain.ErrPaletteExists)
			}
			return tx.Create(&model).Error
		})
	}, maxRetries)
}

// Update replaces the fields, colors and keywords of an existing palette.
// The id and creation time are kept.
func (r *SQLiteRepository) Update(ctx context.Context, palette domain.SavedPalette) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&PaletteModel{}).
				Where("id = ?", palette.ID).
				Updates(map[string]any{
					"description": palette.Description,
					"mode":        string(palette.Mode),
					"name":        palette.Name,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("palette %s: %w", palette.ID, domain.ErrPaletteNotFound)
			}

			if err := replaceChildren(tx, palette); err != nil {
				return err
			}
			return nil
		})
	}, maxRetries)
}

// Delete removes a palette and its colors and keywords
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("palette_id = ?", id).Delete(&PaletteColorModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("palette_id = ?", id).Delete(&PaletteKeywordModel{}).Error; err != nil {
				return err
			}

			result := tx.Where("id = ?", id).Delete(&PaletteModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("palette %s: %w", id, domain.ErrPaletteNotFound)
			}
			return nil
		})
	}, maxRetries)
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Colors", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

func replaceChildren(tx *gorm.DB, palette domain.SavedPalette) error {
	if err := tx.Where("palette_id = ?", palette.ID).Delete(&PaletteColorModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear colors: %w", err)
	}
	if err := tx.Where("palette_id = ?", palette.ID).Delete(&PaletteKeywordModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear keywords: %w", err)
	}

	if colors := colorModels(palette.ID, palette.Colors); len(colors) > 0 {
		if err := tx.Create(&colors).Error; err != nil {
			return fmt.Errorf("failed to save colors: %w", err)
		}
	}
	if keywords := keywordModels(palette.ID, palette.Keywords); len(keywords) > 0 {
		if err := tx.Create(&keywords).Error; err != nil {
			return fmt.Errorf("failed to save keywords: %w", err)
		}
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
