package commands

import (
	"context"

	"pobsd/internal/application"
	"pobsd/internal/catalog"
	"pobsd/internal/domain"
	"pobsd/internal/ports"
)

// FindCommand returns the games having an exact attribute value
type FindCommand struct {
	catalog   ports.GameCatalog
	Attribute string
	Value     string
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(cat ports.GameCatalog, attribute, value string) *FindCommand {
	return &FindCommand{
		catalog:   cat,
		Attribute: attribute,
		Value:     value,
	}
}

// Validate checks the attribute name and value
func (c *FindCommand) Validate() (catalog.Attribute, error) {
	attr, err := application.ValidateAttribute("attribute", c.Attribute)
	if err != nil {
		return attr, err
	}
	if err := application.ValidateRequired("value", c.Value); err != nil {
		return attr, err
	}
	return attr, nil
}

// Execute runs the lookup. "name" looks games up by exact name.
func (c *FindCommand) Execute(ctx context.Context) (catalog.QueryResult[*domain.Game], error) {
	if c.Attribute == "name" {
		if err := application.ValidateRequired("value", c.Value); err != nil {
			return catalog.QueryResult[*domain.Game]{}, err
		}
		return c.catalog.GamesByName(c.Value), nil
	}

	attr, err := c.Validate()
	if err != nil {
		return catalog.QueryResult[*domain.Game]{}, err
	}
	return c.catalog.GamesBy(attr, c.Value), nil
}

// FilterCommand returns the games matching substring patterns, all of them
// or any of them
type FilterCommand struct {
	catalog ports.GameCatalog
	Filter  catalog.Filter
	Any     bool
}

// NewFilterCommand creates a new FilterCommand
func NewFilterCommand(cat ports.GameCatalog, filter catalog.Filter, matchAny bool) *FilterCommand {
	return &FilterCommand{
		catalog: cat,
		Filter:  filter,
		Any:     matchAny,
	}
}

// Execute runs the filter
func (c *FilterCommand) Execute(ctx context.Context) (catalog.QueryResult[*domain.Game], error) {
	if c.Filter.IsEmpty() {
		return catalog.QueryResult[*domain.Game]{}, &application.ValidationError{
			Field:   "filter",
			Message: "at least one pattern is required",
		}
	}
	if c.Any {
		return c.catalog.MatchAny(c.Filter), nil
	}
	return c.catalog.MatchAll(c.Filter), nil
}
