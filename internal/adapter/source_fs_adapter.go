// Package adapter contains filesystem and storage adapters for the linepatch CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/linepatch/internal/model"
)

// ErrUnknownWriteMode is returned by WriteFile for modes it does not implement.
var ErrUnknownWriteMode = errors.New("unknown write mode")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when patching files, so the workflow logic can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Get expands path arguments into target files. "dir/..." walks recursively,
	// a plain directory lists only its own files. include filters by base name.
	Get(roots []m.Path, include string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile replaces the content of path using the given mode.
	WriteFile(path m.Path, content []byte, mode m.WriteMode) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct {
	// writeContent copies content into an open file. Tests swap it to
	// simulate a failure midway through a write.
	writeContent func(w io.Writer, content []byte) error
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{writeContent: writeAll}
}

func writeAll(w io.Writer, content []byte) error {
	_, err := w.Write(content)
	return err
}

// Get collects target files for the provided roots, in argument order.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, include string) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	if include != "" {
		if _, err := filepath.Match(include, ""); err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", include, err)
		}
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, m.Path(path))
	}

	for _, root := range roots {
		rootPath, recursive := parseRootPath(string(root))

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(filepath.Clean(rootPath))
			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if info.Name() == ".git" {
					return filepath.SkipDir
				}

				return nil
			}

			if !info.Mode().IsRegular() || !matchesInclude(include, path) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile replaces the content of path.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, mode m.WriteMode) error {
	switch mode {
	case m.WriteAtomic, "":
		return a.writeAtomic(string(path), content)
	case m.WriteTruncate:
		return a.writeTruncate(string(path), content)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWriteMode, mode)
	}
}

// writeAtomic writes into a sibling temp file and renames it over path. The
// original stays intact until the rename. A symlinked path is resolved first so
// the link's target is replaced and the link itself is kept.
func (a *LocalSourceFSAdapter) writeAtomic(path string, content []byte) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	} else if !errors.Is(evalErr, fs.ErrNotExist) {
		return evalErr
	}

	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".linepatch-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	closed := false

	defer func() {
		if !closed {
			_ = tmp.Close()
		}

		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = a.writeContent(tmp, content); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}

	if err = tmp.Chmod(perm); err != nil {
		return err
	}

	closed = true
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// writeTruncate truncates path and writes in place. The previous content is
// lost as soon as the open succeeds.
func (a *LocalSourceFSAdapter) writeTruncate(path string, content []byte) error {
	// #nosec G304 - path is the file being patched
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if err := a.writeContent(f, content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func matchesInclude(include, path string) bool {
	if include == "" {
		return true
	}

	ok, _ := filepath.Match(include, filepath.Base(path))

	return ok
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		path = strings.TrimSuffix(rootStr, "/...")
		if path == "" {
			path = "/"
		}

		return path, true
	}

	return rootStr, false
}
