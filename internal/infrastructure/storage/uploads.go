package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore persists multipart image uploads on the local filesystem under a
// single directory. Stored files get a fresh UUID name so client-supplied
// filenames never touch the disk; the returned path is the forward-slash
// relative path recorded on the owning record and served statically.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// rooted at it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory files are stored in.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file to disk and returns its stored path, e.g.
// "uploads/5f3a….jpg". Empty files are rejected.
func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size == 0 {
		return "", fmt.Errorf("empty upload %q", fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path.Join(filepath.ToSlash(s.dir), name), nil
}
