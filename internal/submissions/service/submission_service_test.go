package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/repository"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/uploads"
)

type failingStore struct {
	repository.Store
	err error
}

func (f *failingStore) Append(ctx context.Context, p domain.Project) error {
	return f.err
}

func (f *failingStore) Load(ctx context.Context) ([]domain.Project, error) {
	return nil, f.err
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func setupService(t *testing.T) (*SubmissionService, *repository.FileStore, *uploads.Uploader) {
	t.Helper()
	dir := t.TempDir()

	store, err := repository.NewFileStore(filepath.Join(dir, "projects.json"))
	require.NoError(t, err)
	uploader, err := uploads.NewUploader(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	return NewSubmissionService(store, uploader), store, uploader
}

func TestSubmissionService_Submit(t *testing.T) {
	svc, _, _ := setupService(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	t.Run("stores project and file", func(t *testing.T) {
		p, err := svc.Submit(ctx, &domain.SubmitRequest{
			Title:       "  Demo ",
			Description: "A demo project",
			File:        fileHeader(t, "demo.zip", []byte("zip-bytes")),
			VideoLink:   "   ",
		})
		require.NoError(t, err)

		assert.Equal(t, "Demo", p.Title)
		assert.Empty(t, p.VideoLink)
		assert.Equal(t, fixed.UTC(), p.CreatedAt)
		assert.Equal(t, time.UTC, p.CreatedAt.Location())
		assert.NotEmpty(t, p.FileURL)

		data, err := os.ReadFile(p.File)
		require.NoError(t, err)
		assert.Equal(t, "zip-bytes", string(data))
	})

	t.Run("keeps video link", func(t *testing.T) {
		p, err := svc.Submit(ctx, &domain.SubmitRequest{
			Title:       "Video",
			Description: "with link",
			File:        fileHeader(t, "v.mp4", []byte("v")),
			VideoLink:   "https://youtu.be/demo",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://youtu.be/demo", p.VideoLink)
	})

	t.Run("lists in submission order", func(t *testing.T) {
		projects, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "Demo", projects[0].Title)
		assert.Equal(t, "Video", projects[1].Title)
	})
}

func TestSubmissionService_SubmitValidation(t *testing.T) {
	svc, store, uploader := setupService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, &domain.SubmitRequest{
		Description: "no title",
		File:        fileHeader(t, "a.txt", []byte("x")),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	projects, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	entries, err := uploader.List()
	require.NoError(t, err)
	assert.Empty(t, entries, "no file is written for invalid submissions")
}

func TestSubmissionService_StoreFailure(t *testing.T) {
	dir := t.TempDir()
	uploader, err := uploads.NewUploader(dir)
	require.NoError(t, err)

	svc := NewSubmissionService(&failingStore{err: errors.New("disk full")}, uploader)

	_, err = svc.Submit(context.Background(), &domain.SubmitRequest{
		Title:       "t",
		Description: "d",
		File:        fileHeader(t, "a.txt", []byte("x")),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrValidation))

	entries, err := uploader.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1, "upload is orphaned, not cleaned up")

	_, err = svc.List(context.Background())
	assert.Error(t, err)
}
