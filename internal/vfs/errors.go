package vfs

import "errors"

// ErrInvalidPath is returned when a name resolves outside of its Root
var ErrInvalidPath = errors.New("path resolves outside of the root directory")

// ErrNotDirectory is returned when a Root is requested for something other than a directory
var ErrNotDirectory = errors.New("path needs to be a directory")
