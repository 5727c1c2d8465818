package vfs

import (
	"context"
	"os"
	"strconv"

	"gitlab.com/dagmap/dagmap/metrics"
)

// Root abstracts the things dagmap needs to serve files from a given root path.
// Every name is relative to the root and must never resolve outside of it.
//
// Stat follows symlinks that stay inside of the root, Lstat describes the
// last component of name itself.
type Root interface {
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	Lstat(ctx context.Context, name string) (os.FileInfo, error)
	Open(ctx context.Context, name string) (File, error)
}

type instrumentedRoot struct {
	root Root
	name string
	path string
}

func (i *instrumentedRoot) increment(operation string, err error) {
	metrics.VFSOperations.WithLabelValues(i.name, operation, strconv.FormatBool(err == nil)).Inc()
}

func (i *instrumentedRoot) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	fi, err := i.root.Stat(ctx, name)
	i.increment("Stat", err)

	logEntry(ctx).
		WithField("vfs", i.name).
		WithField("path", i.path).
		WithField("name", name).
		WithError(err).
		Traceln("Stat call")

	return fi, err
}

func (i *instrumentedRoot) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	fi, err := i.root.Lstat(ctx, name)
	i.increment("Lstat", err)

	logEntry(ctx).
		WithField("vfs", i.name).
		WithField("path", i.path).
		WithField("name", name).
		WithError(err).
		Traceln("Lstat call")

	return fi, err
}

func (i *instrumentedRoot) Open(ctx context.Context, name string) (File, error) {
	f, err := i.root.Open(ctx, name)
	i.increment("Open", err)

	logEntry(ctx).
		WithField("vfs", i.name).
		WithField("path", i.path).
		WithField("name", name).
		WithError(err).
		Traceln("Open call")

	return f, err
}
