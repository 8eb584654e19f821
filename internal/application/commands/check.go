package commands

import (
	"context"
	"errors"

	"pobsd/internal/application"
	"pobsd/internal/parser"
	"pobsd/internal/ports"
)

// CheckReport summarizes the health of a database
type CheckReport struct {
	Source     string
	Mode       parser.Mode
	Games      int
	Lines      int
	BadLines   []int
	Unknown    []parser.UnknownField
	Duplicates []string
	Halted     bool
}

// OK reports whether no line was rejected
func (r *CheckReport) OK() bool {
	return len(r.BadLines) == 0
}

// CheckCommand parses a database and reports rejected lines, unknown field
// names and duplicated game names
type CheckCommand struct {
	source ports.DatabaseSource
	Mode   parser.Mode
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(source ports.DatabaseSource, mode parser.Mode) *CheckCommand {
	return &CheckCommand{
		source: source,
		Mode:   mode,
	}
}

// Execute runs the check. A malformed database is not an error: it is
// described by the report.
func (c *CheckCommand) Execute(ctx context.Context) (*CheckReport, error) {
	loaded, err := NewLoadCommand(c.source, c.Mode).Execute(ctx)
	if err != nil && !errors.Is(err, application.ErrMalformedDatabase) {
		return nil, err
	}

	res := loaded.Parse
	return &CheckReport{
		Source:     c.source.Name(),
		Mode:       c.Mode,
		Games:      len(res.Games),
		Lines:      res.Lines,
		BadLines:   res.BadLines,
		Unknown:    res.Unknown,
		Duplicates: loaded.Catalog.Duplicates(),
		Halted:     res.Halted,
	}, nil
}
