package uploads

import (
	"io"
	"os"
	"path/filepath"
)

// Store persists uploaded files and returns the URL they are served from.
type Store interface {
	Save(name string, r io.Reader) (string, error)
}

// DiskStore writes files under a local directory that the server exposes
// at /uploads/.
type DiskStore struct {
	Dir string
}

// StaticDir returns the on-disk directory behind /uploads/.
func StaticDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// NewDiskStore creates the static directory if needed.
func NewDiskStore() (*DiskStore, error) {
	dir := StaticDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return "/uploads/" + name, nil
}
