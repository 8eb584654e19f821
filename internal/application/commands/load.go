package commands

import (
	"context"

	"pobsd/internal/application"
	"pobsd/internal/catalog"
	"pobsd/internal/ctxlog"
	"pobsd/internal/parser"
	"pobsd/internal/ports"
)

// LoadResult contains a loaded catalog and the parse outcome it came from
type LoadResult struct {
	Catalog *catalog.Catalog
	Parse   *parser.Result
}

// LoadCommand reads a database source, assembles its records and indexes them
type LoadCommand struct {
	source ports.DatabaseSource
	Mode   parser.Mode
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(source ports.DatabaseSource, mode parser.Mode) *LoadCommand {
	return &LoadCommand{
		source: source,
		Mode:   mode,
	}
}

// Execute loads the database. The result holds every record assembled, even
// when lines were rejected or reading failed part way. Only a source that
// cannot be opened yields a nil result. In Strict mode a rejected line is also
// returned as a *parser.MalformedError, which matches ErrMalformedDatabase.
func (c *LoadCommand) Execute(ctx context.Context) (*LoadResult, error) {
	logger := ctxlog.FromContext(ctx).With("source", c.source.Name())

	rc, err := c.source.Open(ctx)
	if err != nil {
		return nil, &application.LoadError{Source: c.source.Name(), Err: err}
	}
	defer rc.Close()

	p := parser.New(parser.WithMode(c.Mode), parser.WithLogger(logger))
	res, err := p.Parse(ctx, rc)
	result := &LoadResult{
		Catalog: catalog.Build(res.Games),
		Parse:   res,
	}
	if err != nil {
		logger.Warn("database read interrupted", "games", result.Catalog.Len(), "error", err)
		return result, &application.LoadError{Source: c.source.Name(), Err: err}
	}

	logger.Info("database loaded",
		"games", result.Catalog.Len(),
		"lines", res.Lines,
		"ignored_lines", len(res.BadLines),
		"mode", c.Mode.String(),
	)

	if c.Mode == parser.Strict && res.HasErrors() {
		return result, res.Err()
	}
	return result, nil
}
