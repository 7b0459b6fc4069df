package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/GoSim-25-26J-441/project-submissions/internal/logging"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/repository"
)

// FileSaver places an uploaded file somewhere durable.
type FileSaver interface {
	Save(fh *multipart.FileHeader) (*domain.StoredFile, error)
}

// SubmissionService handles project submission business logic
type SubmissionService struct {
	store    repository.Store
	uploader FileSaver
	now      func() time.Time
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(store repository.Store, uploader FileSaver) *SubmissionService {
	return &SubmissionService{
		store:    store,
		uploader: uploader,
		now:      time.Now,
	}
}

// Submit validates req, stores its file and appends the resulting record.
// The stored file is left in place if the append fails.
func (s *SubmissionService) Submit(ctx context.Context, req *domain.SubmitRequest) (*domain.Project, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(ctx)

	stored, err := s.uploader.Save(req.File)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	logger.LogDebugf("submit", "stored upload file=%s bytes=%d", stored.Filename, stored.Size)

	project := domain.Project{
		Title:       req.Title,
		Description: req.Description,
		File:        stored.Path,
		FileURL:     stored.URL,
		VideoLink:   req.VideoLink,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.Append(ctx, project); err != nil {
		logger.LogWarnf("submit", "upload orphaned file=%s", stored.Filename)
		return nil, fmt.Errorf("append project: %w", err)
	}

	logger.LogInfof("submit", "project stored title=%q file=%s", project.Title, stored.Filename)
	return &project, nil
}

// List returns every project in insertion order
func (s *SubmissionService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return projects, nil
}

// Ping checks that the backing store is reachable
func (s *SubmissionService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
