package ports

import (
	"context"
	"io"
)

// DatabaseSource provides the raw lines of a PlayOnBSD database
type DatabaseSource interface {
	// Open returns a reader over the database text. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Name identifies the source in messages (usually a path)
	Name() string
}
