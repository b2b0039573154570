package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedType is returned when the uploaded file's extension is not on
// the allow-list.
var ErrUnsupportedType = errors.New("unsupported video format")

var allowedExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".avi":  {},
	".mkv":  {},
	".webm": {},
}

// UploadStore writes uploaded videos to a local directory under
// collision-resistant names.
type UploadStore struct {
	dir string
}

// NewUploadStore creates the uploads directory if needed and returns a store
// rooted there.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save streams src into the store and returns the stored filename. The name
// is prefixed with a millisecond timestamp, mirroring how the stored file is
// later referenced by the generated video title.
func (s *UploadStore) Save(src io.Reader, originalName string) (string, error) {
	base := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(base))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}

	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return stored, nil
}
