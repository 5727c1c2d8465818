package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/dagmap/dagmap/internal/vfs"
)

// VFS opens web roots on the local disk
type VFS struct{}

// Root returns a vfs.Root confined to the directory found at path
func (localFs *VFS) Root(ctx context.Context, path string) (vfs.Root, error) {
	rootPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	rootPath, err = filepath.EvalSymlinks(rootPath)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate symlinks: %w", err)
	}

	fi, err := os.Lstat(rootPath)
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsDir() {
		return nil, fmt.Errorf("%q: %w", rootPath, vfs.ErrNotDirectory)
	}

	return &Root{path: rootPath}, nil
}

func (localFs *VFS) Name() string {
	return "local"
}
