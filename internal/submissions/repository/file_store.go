package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
)

// FileStore keeps all projects as one JSON array in a single file.
// Every mutation rewrites the whole file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. The parent directory is created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load returns every stored project. A missing file is initialized to an empty array.
func (s *FileStore) Load(ctx context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save replaces the file contents with projects.
func (s *FileStore) Save(ctx context.Context, projects []domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(projects)
}

// Append adds project to the end of the array under the store lock.
func (s *FileStore) Append(ctx context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(projects, project))
}

// Ping fails when the store file is unreadable or does not hold a JSON array.
// A missing file is fine as long as its directory exists; Load creates it.
func (s *FileStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		_, err = os.Stat(filepath.Dir(s.path))
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	var projects []json.RawMessage
	if err := json.Unmarshal(data, &projects); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}
	return nil
}

func (s *FileStore) load() ([]domain.Project, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		projects := make([]domain.Project, 0)
		if err := s.save(projects); err != nil {
			return nil, err
		}
		return projects, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}
	if projects == nil {
		projects = make([]domain.Project, 0)
	}
	return projects, nil
}

func (s *FileStore) save(projects []domain.Project) error {
	if projects == nil {
		projects = make([]domain.Project, 0)
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}

	// atomic.WriteFile swaps in a temp file, so readers never see a partial array.
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
