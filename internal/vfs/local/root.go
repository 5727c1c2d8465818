package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"gitlab.com/dagmap/dagmap/internal/vfs"
)

// Root is a directory on the local disk. It is created by VFS.Root with all
// symlinks of its own path already evaluated.
type Root struct {
	path string
}

type invalidPathError struct {
	rootPath      string
	requestedPath string
}

func (e *invalidPathError) Error() string {
	return fmt.Sprintf("%q should be in %q", e.requestedPath, e.rootPath)
}

func (e *invalidPathError) Unwrap() error {
	return vfs.ErrInvalidPath
}

// validatePath returns the full path on disk and the path relative to the root
func (r *Root) validatePath(fullPath string) (string, string, error) {
	if r.path == fullPath {
		return fullPath, "", nil
	}

	vfsPath := strings.TrimPrefix(fullPath, r.path+"/")

	// The requested path resolved to somewhere outside of the `r.path` directory
	if fullPath == vfsPath {
		return "", "", &invalidPathError{rootPath: r.path, requestedPath: fullPath}
	}

	return fullPath, vfsPath, nil
}

// resolve joins name to the root, checks it lexically, follows any symlinks
// and checks the destination again
func (r *Root) resolve(name string) (string, error) {
	fullPath, _, err := r.validatePath(filepath.Join(r.path, name))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", err
	}

	resolved, _, err = r.validatePath(resolved)
	if err != nil {
		return "", err
	}

	return resolved, nil
}

// Stat describes the file name resolves to, following symlinks that stay
// inside of the root
func (r *Root) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	fullPath, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	return os.Lstat(fullPath)
}

// Lstat describes name itself. Only the directories leading to it are
// resolved, a symlink as last component is reported as a symlink.
func (r *Root) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	fullPath, _, err := r.validatePath(filepath.Join(r.path, name))
	if err != nil {
		return nil, err
	}

	if fullPath == r.path {
		return os.Lstat(fullPath)
	}

	dir, err := r.resolve(filepath.Dir(strings.TrimPrefix(fullPath, r.path+"/")))
	if err != nil {
		return nil, err
	}

	return os.Lstat(filepath.Join(dir, filepath.Base(fullPath)))
}

func (r *Root) Open(ctx context.Context, name string) (vfs.File, error) {
	fullPath, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(fullPath, os.O_RDONLY|unix.O_NOFOLLOW, 0)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// Path returns the absolute location of the root on disk
func (r *Root) Path() string {
	return r.path
}
