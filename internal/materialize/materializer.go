// Package materialize writes rendered documents under the public output root.
// Every write is a full overwrite; nothing is diffed and nothing is deleted.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Materializer writes files relative to a root directory.
type Materializer struct {
	root string
}

// New returns a materializer rooted at root. The root itself is created lazily.
func New(root string) *Materializer {
	return &Materializer{root: root}
}

// Root returns the output root.
func (m *Materializer) Root() string { return m.root }

// Resolve maps a slash-separated relative path to its location on disk. Paths
// that are absolute or climb out of the root are rejected.
func (m *Materializer) Resolve(rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if rel == "" || !filepath.IsLocal(local) {
		return "", ferrors.FileSystemError("output path escapes the output root").
			WithContext("path", rel).
			WithContext("root", m.root).
			Build()
	}
	return filepath.Join(m.root, local), nil
}

// Materialize writes content to rel, creating parent directories as needed.
// Existing directories are not an error; an existing file is replaced.
func (m *Materializer) Materialize(rel string, content []byte) error {
	target, err := m.Resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return ioError("create output directory", target, err)
	}
	if err := writeFileAtomic(target, content); err != nil {
		return ioError("write output file", target, err)
	}
	return nil
}

// writeFileAtomic writes to a sibling temp file and renames it over target, so a
// reader never sees a half-written page.
func writeFileAtomic(target string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func ioError(msg, path string, cause error) error {
	return ferrors.WrapError(cause, ferrors.CategoryFileSystem, msg).
		Fatal().
		WithContext("path", path).
		Build()
}
