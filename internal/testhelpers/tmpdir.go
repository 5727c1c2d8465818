package testhelpers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/dagmap/dagmap/internal/vfs"
	"gitlab.com/dagmap/dagmap/internal/vfs/local"
)

var fs = vfs.Instrumented(&local.VFS{})

// TmpDir returns a temporary directory with all symlinks of its own path
// evaluated, and a vfs.Root confined to it
func TmpDir(tb testing.TB) (vfs.Root, string) {
	tb.Helper()

	var err error
	tmpDir := tb.TempDir()

	// On some systems `/tmp` can be a symlink
	tmpDir, err = filepath.EvalSymlinks(tmpDir)
	require.NoError(tb, err)

	root, err := fs.Root(context.Background(), tmpDir)
	require.NoError(tb, err)

	return root, tmpDir
}

// WebRoot is TmpDir populated with files, keyed by their slash separated
// path relative to the root
func WebRoot(tb testing.TB, files map[string]string) (vfs.Root, string) {
	tb.Helper()

	root, dir := TmpDir(tb)

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0644))
	}

	return root, dir
}
