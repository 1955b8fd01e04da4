package assets

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// DiskStore keeps uploaded images as files under a single directory and
// serves them back through the public /uploads/ route.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

// Save writes the uploaded bytes to disk under a timestamped name and
// returns the public URL of the stored file.
func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(name))

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("failed to store asset: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to store asset: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", s.baseURL, stored), nil
}

// Delete removes the file a previously returned reference points at.
func (s *DiskStore) Delete(ref string) error {
	u, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("invalid asset reference %q: %w", ref, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid asset reference %q", ref)
	}
	return os.Remove(filepath.Join(s.dir, name))
}
