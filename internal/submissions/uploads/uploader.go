package uploads

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
)

// URLPrefix is the public route uploads are served under.
const URLPrefix = "/uploads"

// Uploader places submitted files into a single directory under generated names.
type Uploader struct {
	dir string
}

// Entry is a stored upload as seen on disk.
type Entry struct {
	Filename string
	ModTime  time.Time
}

// NewUploader resolves dir to an absolute path and creates it if absent.
func NewUploader(dir string) (*Uploader, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve uploads dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Uploader{dir: abs}, nil
}

func (u *Uploader) Dir() string {
	return u.dir
}

// Save streams fh to disk as <uuid><ext>. A partially written file is removed on error.
func (u *Uploader) Save(fh *multipart.FileHeader) (*domain.StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + extension(fh.Filename)
	dst := filepath.Join(u.dir, name)

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	n, err := io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	return &domain.StoredFile{
		Path:     dst,
		Filename: name,
		URL:      path.Join(URLPrefix, name),
		Size:     n,
	}, nil
}

// List returns the regular files currently in the uploads directory.
func (u *Uploader) List() ([]Entry, error) {
	entries, err := os.ReadDir(u.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploads dir: %w", err)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		out = append(out, Entry{Filename: e.Name(), ModTime: info.ModTime()})
	}
	return out, nil
}

// Remove deletes a stored upload by filename. Missing files are not an error.
func (u *Uploader) Remove(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid upload name %q", filename)
	}
	err := os.Remove(filepath.Join(u.dir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FilenameFromURL maps a public /uploads/<name> URL back to its filename.
func FilenameFromURL(url string) (string, bool) {
	name, ok := strings.CutPrefix(url, URLPrefix+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

func extension(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}
