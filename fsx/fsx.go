package fsx

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	fsErrors = errx.NewRegistry("FS")

	ErrWriteFailed = fsErrors.Register("WRITE_FAILED", errx.TypeSystem, http.StatusInternalServerError, "Failed to write file")
	ErrOutsideRoot = fsErrors.Register("OUTSIDE_ROOT", errx.TypeBadRequest, http.StatusBadRequest, "Path escapes the root directory")
)

// FileSystem is where downloaded binaries are stored
type FileSystem interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	CreateDir(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	Join(elem ...string) string
}

// Local is a FileSystem rooted at a directory on disk. Paths are relative
// to the root and may not leave it.
type Local struct {
	root string
}

// NewLocal creates a Local rooted at root
func NewLocal(root string) *Local {
	return &Local{root: filepath.Clean(root)}
}

// Root returns the root directory
func (l *Local) Root() string { return l.root }

func (l *Local) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fsErrors.NewWithCause(ErrWriteFailed, err).WithDetail("path", path)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fsErrors.NewWithCause(ErrWriteFailed, err).WithDetail("path", path)
	}
	return nil
}

func (l *Local) CreateDir(ctx context.Context, path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, 0o755); err != nil {
		return fsErrors.NewWithCause(ErrWriteFailed, err).WithDetail("path", path)
	}
	return nil
}

func (l *Local) Exists(ctx context.Context, path string) (bool, error) {
	full, err := l.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (l *Local) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (l *Local) resolve(path string) (string, error) {
	full := filepath.Join(l.root, path)
	rel, err := filepath.Rel(l.root, full)
	if err != nil || rel == ".." || (len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)) {
		return "", fsErrors.New(ErrOutsideRoot).WithDetail("path", path)
	}
	return full, nil
}
