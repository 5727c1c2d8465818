package vfs

import (
	"context"
	"strconv"

	"gitlab.com/dagmap/dagmap/metrics"
)

//go:generate mockgen -destination mock/vfs_mock.go -package mock gitlab.com/dagmap/dagmap/internal/vfs Root,VFS

// VFS abstracts the things dagmap needs to open a web root
type VFS interface {
	Root(ctx context.Context, path string) (Root, error)
	Name() string
}

// Instrumented wraps a VFS so every operation is counted and traced
func Instrumented(fs VFS) VFS {
	return &instrumentedVFS{fs: fs}
}

type instrumentedVFS struct {
	fs VFS
}

func (i *instrumentedVFS) increment(operation string, err error) {
	metrics.VFSOperations.WithLabelValues(i.fs.Name(), operation, strconv.FormatBool(err == nil)).Inc()
}

func (i *instrumentedVFS) Root(ctx context.Context, path string) (Root, error) {
	root, err := i.fs.Root(ctx, path)

	i.increment("Root", err)
	logEntry(ctx).
		WithField("vfs", i.fs.Name()).
		WithField("path", path).
		WithError(err).
		Traceln("Root call")

	if err != nil {
		return nil, err
	}

	return &instrumentedRoot{root: root, name: i.fs.Name(), path: path}, nil
}

func (i *instrumentedVFS) Name() string {
	return i.fs.Name()
}
