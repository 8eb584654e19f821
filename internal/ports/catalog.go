package ports

import (
	"pobsd/internal/catalog"
	"pobsd/internal/domain"
)

// GameCatalog is the read side of a loaded database.
// Returned games are shared and must not be modified; items are copies.
type GameCatalog interface {
	Len() int

	// Lookups by key
	Game(id int) (*domain.Game, bool)
	GameByUUID(uuid string) (*domain.Game, bool)

	// Game listings
	Games() catalog.QueryResult[*domain.Game]
	GamesByName(name string) catalog.QueryResult[*domain.Game]
	GamesNameContains(pattern string) catalog.QueryResult[*domain.Game]
	GamesBy(attr catalog.Attribute, value string) catalog.QueryResult[*domain.Game]

	// Substring filters
	MatchAll(f catalog.Filter) catalog.QueryResult[*domain.Game]
	MatchAny(f catalog.Filter) catalog.QueryResult[*domain.Game]

	// Secondary indexes
	Item(attr catalog.Attribute, value string) (*domain.Item, bool)
	Items(attr catalog.Attribute) catalog.QueryResult[*domain.Item]
}

var _ GameCatalog = (*catalog.Catalog)(nil)
