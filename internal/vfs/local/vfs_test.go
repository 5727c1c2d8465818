package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/dagmap/dagmap/internal/vfs"
)

func TestVFSRoot(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "web"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0644))
	require.NoError(t, os.Symlink("web", filepath.Join(dir, "link")))

	tests := map[string]struct {
		path               string
		expectedPath       string
		expectedNotDir     bool
		expectedIsNotExist bool
	}{
		"a directory": {
			path:         filepath.Join(dir, "web"),
			expectedPath: filepath.Join(dir, "web"),
		},
		"a link to a directory is evaluated": {
			path:         filepath.Join(dir, "link"),
			expectedPath: filepath.Join(dir, "web"),
		},
		"a file": {
			path:           filepath.Join(dir, "file"),
			expectedNotDir: true,
		},
		"a missing directory": {
			path:               filepath.Join(dir, "missing"),
			expectedIsNotExist: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			root, err := localVFS.Root(context.Background(), test.path)

			if test.expectedNotDir {
				require.True(t, errors.Is(err, vfs.ErrNotDirectory), "NotDirectory: %v", err)
				return
			}

			if test.expectedIsNotExist {
				require.True(t, errors.Is(err, fs.ErrNotExist), "IsNotExist: %v", err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expectedPath, root.(*Root).Path())
		})
	}
}

func TestVFSName(t *testing.T) {
	require.Equal(t, "local", localVFS.Name())
}
