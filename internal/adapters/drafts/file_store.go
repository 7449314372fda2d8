package drafts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ports"
)

// FileStore implements ports.DraftStore with a JSON file guarded by an
// exclusive file lock while writing
type FileStore struct {
	now  func() time.Time
	path string
}

// Verify interface compliance at compile time
var _ ports.DraftStore = (*FileStore)(nil)

type draftFile struct {
	Fields    domain.PaletteFormFields `json:"fields"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// NewFileStore creates a draft store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{now: time.Now, path: path}
}

// Load reads the draft. Returns nil if there is none.
func (s *FileStore) Load() (*domain.PaletteFormFields, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var draft draftFile
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	logging.Logger.Debug("Draft loaded", "path", s.path, "updated_at", draft.UpdatedAt)
	return &draft.Fields, nil
}

// Save writes the draft to disk with file locking
func (s *FileStore) Save(fields domain.PaletteFormFields) error {
	data, err := json.MarshalIndent(draftFile{Fields: fields, UpdatedAt: s.now()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	return s.withLockedFile(func(file *os.File) error {
		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("failed to truncate file: %w", err)
		}
		if _, err := file.Seek(0, 0); err != nil {
			return fmt.Errorf("failed to seek to beginning: %w", err)
		}
		if _, err := file.Write(data); err != nil {
			return fmt.Errorf("failed to write draft: %w", err)
		}
		return nil
	})
}

// Clear removes the draft
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove draft: %w", err)
	}
	return nil
}

func (s *FileStore) withLockedFile(fn func(file *os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create draft directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open draft file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	return fn(file)
}
