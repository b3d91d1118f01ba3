package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/llmstxt"
)

// Ensure Writer implements llmstxt.ArtifactWriter at compile time.
var _ llmstxt.ArtifactWriter = (*Writer)(nil)

// Writer writes artifacts as text files below a base directory.
// Each write goes to a temporary file that is renamed into place, and files
// whose content is unchanged are left untouched.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArtifact writes content to path relative to the base directory.
func (w *Writer) WriteArtifact(ctx context.Context, path string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !filepath.IsLocal(filepath.FromSlash(path)) {
		return llmstxt.Errorf(llmstxt.EINVALID, "artifact path %q escapes the output directory", path)
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(path))

	if unchanged, err := sameContent(fullPath, content); err != nil {
		return err
	} else if unchanged {
		return nil
	}

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(tmp.Name(), fullPath)
}

// sameContent reports whether the file at path already holds content.
func sameContent(path string, content string) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return len(existing) == len(content) && xxhash.Sum64(existing) == xxhash.Sum64String(content), nil
}
