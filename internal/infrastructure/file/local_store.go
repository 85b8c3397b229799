package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps uploaded files under a single directory, named by a fresh
// UUID so concurrent uploads never collide.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalStore{Dir: dir}
}

func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	_ = ctx

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir %s: %w", s.Dir, err)
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(name))
	path := filepath.Join(s.Dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file %s: %w", path, err)
	}

	return path, nil
}
