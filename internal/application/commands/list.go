package commands

import (
	"context"

	"pobsd/internal/application"
	"pobsd/internal/catalog"
	"pobsd/internal/domain"
	"pobsd/internal/ports"
)

// ListGamesCommand lists every game in display order
type ListGamesCommand struct {
	catalog ports.GameCatalog
}

// NewListGamesCommand creates a new ListGamesCommand
func NewListGamesCommand(cat ports.GameCatalog) *ListGamesCommand {
	return &ListGamesCommand{catalog: cat}
}

// Execute runs the list games command
func (c *ListGamesCommand) Execute(ctx context.Context) (catalog.QueryResult[*domain.Game], error) {
	return c.catalog.Games(), nil
}

// ListItemsCommand lists the values of an indexed attribute
type ListItemsCommand struct {
	catalog   ports.GameCatalog
	Attribute string
}

// NewListItemsCommand creates a new ListItemsCommand
func NewListItemsCommand(cat ports.GameCatalog, attribute string) *ListItemsCommand {
	return &ListItemsCommand{
		catalog:   cat,
		Attribute: attribute,
	}
}

// Execute runs the list items command
func (c *ListItemsCommand) Execute(ctx context.Context) (catalog.QueryResult[*domain.Item], error) {
	attr, err := application.ValidateAttribute("attribute", c.Attribute)
	if err != nil {
		return catalog.QueryResult[*domain.Item]{}, err
	}
	return c.catalog.Items(attr), nil
}
