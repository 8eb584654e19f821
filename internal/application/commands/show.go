package commands

import (
	"context"

	"pobsd/internal/application"
	"pobsd/internal/domain"
	"pobsd/internal/ports"
)

// ShowCommand looks a game up by id
type ShowCommand struct {
	catalog ports.GameCatalog
	GameID  string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cat ports.GameCatalog, gameID string) *ShowCommand {
	return &ShowCommand{
		catalog: cat,
		GameID:  gameID,
	}
}

// Execute returns the game or an error matching ErrNotFound
func (c *ShowCommand) Execute(ctx context.Context) (*domain.Game, error) {
	id, err := application.ValidateID("gameID", c.GameID)
	if err != nil {
		return nil, err
	}

	game, ok := c.catalog.Game(id)
	if !ok {
		return nil, &application.NotFoundError{What: "game", Key: c.GameID}
	}
	return game, nil
}
