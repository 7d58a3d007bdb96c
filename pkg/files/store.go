package files

import (
	"context"
)

// Store is the filesystem boundary consumed by the navigation core.
// Implementations report failures through the sentinel errors of this
// package so callers can tell "not found" from "permission denied".
type Store interface {
	ReadDir(ctx context.Context, dirPath string) ([]Entry, error)
	Stat(ctx context.Context, path string) (Entry, error)
	// ReadFile returns at most max bytes from the start of the file.
	ReadFile(ctx context.Context, path string, max int) ([]byte, error)
	CreateDir(ctx context.Context, path string) error
	// CreateFile creates an empty file; an existing path is left as is.
	CreateFile(ctx context.Context, path string) error
}
