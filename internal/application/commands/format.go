package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"pobsd/internal/application"
	"pobsd/internal/domain"
	"pobsd/internal/parser"
	"pobsd/internal/ports"
)

// FormatCommand re-renders a database in canonical form: every record with
// its sixteen lines, one record after the other.
type FormatCommand struct {
	source         ports.DatabaseSource
	Mode           parser.Mode
	NormalizeDates bool
	SortByName     bool
}

// NewFormatCommand creates a new FormatCommand
func NewFormatCommand(source ports.DatabaseSource, mode parser.Mode) *FormatCommand {
	return &FormatCommand{
		source: source,
		Mode:   mode,
	}
}

// Execute writes the formatted database to w and returns the parse outcome.
// Rejected lines are dropped from the output.
func (c *FormatCommand) Execute(ctx context.Context, w io.Writer) (*parser.Result, error) {
	loaded, err := NewLoadCommand(c.source, c.Mode).Execute(ctx)
	if err != nil {
		if errors.Is(err, application.ErrMalformedDatabase) {
			return loaded.Parse, err
		}
		return nil, err
	}

	games := loaded.Catalog.InputOrder()
	if c.SortByName {
		slices.SortStableFunc(games, domain.CompareByName)
	}

	for _, g := range games {
		out := *g
		if c.NormalizeDates {
			out.NormalizeDates()
		}
		if _, err := fmt.Fprintln(w, out.String()); err != nil {
			return loaded.Parse, fmt.Errorf("writing formatted database: %w", err)
		}
	}
	return loaded.Parse, nil
}
