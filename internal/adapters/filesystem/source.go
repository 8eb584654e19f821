package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pobsd/internal/ports"
)

// Source implements ports.DatabaseSource for a database file on disk
type Source struct {
	path string
}

// Ensure Source implements DatabaseSource
var _ ports.DatabaseSource = (*Source)(nil)

// NewSource creates a file source. A leading ~ is expanded to the home directory.
func NewSource(path string) *Source {
	return &Source{path: ExpandHome(path)}
}

// Open opens the database file
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return f, nil
}

// Name returns the resolved path
func (s *Source) Name() string {
	return s.path
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
