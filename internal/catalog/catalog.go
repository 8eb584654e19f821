// Package catalog folds assembled games into an id-keyed collection and
// per-attribute secondary indexes, and answers lookups over them.
//
// A Catalog is not modified after Build and is safe for concurrent readers.
// Games are handed out as shared pointers and must be treated as read-only;
// items are returned as copies.
package catalog

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"

	"pobsd/internal/domain"
)

// QueryResult is an ordered result set with its size
type QueryResult[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

func newResult[T any](items []T) QueryResult[T] {
	return QueryResult[T]{Count: len(items), Items: items}
}

// Catalog holds the games of one database load
type Catalog struct {
	games   map[int]*domain.Game
	order   []*domain.Game
	uuids   map[string]*domain.Game
	indexes map[Attribute]map[string]*domain.Item
}

// Build indexes games. Games are always renumbered 1..n in the order given,
// whatever ID they carry, and get a stable UUID from their name when they have
// none. The input slice is not modified.
func Build(games []domain.Game) *Catalog {
	c := &Catalog{
		games:   make(map[int]*domain.Game, len(games)),
		order:   make([]*domain.Game, 0, len(games)),
		uuids:   make(map[string]*domain.Game, len(games)),
		indexes: make(map[Attribute]map[string]*domain.Item, len(Attributes)),
	}
	for _, attr := range Attributes {
		c.indexes[attr] = make(map[string]*domain.Item)
	}

	for i := range games {
		g := games[i]
		g.ID = i + 1
		if g.UUID == "" {
			g.UUID = domain.StableID(g.Name)
		}

		c.games[g.ID] = &g
		c.order = append(c.order, &g)
		if _, ok := c.uuids[g.UUID]; !ok {
			c.uuids[g.UUID] = &g
		}

		for _, attr := range Attributes {
			for _, value := range attr.values(&g) {
				c.insert(attr, value, g.ID)
			}
		}
	}
	return c
}

func (c *Catalog) insert(attr Attribute, value string, id int) {
	index := c.indexes[attr]
	item, ok := index[value]
	if !ok {
		item = &domain.Item{Name: value}
		index[value] = item
	}
	item.Games = append(item.Games, id)
}

// Len returns the number of games
func (c *Catalog) Len() int {
	return len(c.order)
}

// Game returns the game with the given id
func (c *Catalog) Game(id int) (*domain.Game, bool) {
	g, ok := c.games[id]
	return g, ok
}

// GameByUUID returns the first game with the given stable id
func (c *Catalog) GameByUUID(uuid string) (*domain.Game, bool) {
	g, ok := c.uuids[uuid]
	return g, ok
}

// Games returns every game in display order
func (c *Catalog) Games() QueryResult[*domain.Game] {
	return gameResult(slices.Clone(c.order))
}

// InputOrder returns every game in assembly order
func (c *Catalog) InputOrder() []*domain.Game {
	return slices.Clone(c.order)
}

// GamesByName returns the games whose name is exactly name
func (c *Catalog) GamesByName(name string) QueryResult[*domain.Game] {
	return c.where(func(g *domain.Game) bool { return g.Name == name })
}

// GamesNameContains returns the games whose name contains pattern, ignoring case
func (c *Catalog) GamesNameContains(pattern string) QueryResult[*domain.Game] {
	return c.where(func(g *domain.Game) bool { return containsFold(g.Name, pattern) })
}

// GamesBy returns the games having exactly value for attr
func (c *Catalog) GamesBy(attr Attribute, value string) QueryResult[*domain.Game] {
	item, ok := c.indexes[attr][value]
	if !ok {
		return gameResult(nil)
	}
	games := make([]*domain.Game, 0, len(item.Games))
	for _, id := range item.Games {
		games = append(games, c.games[id])
	}
	return gameResult(games)
}

// Item returns a copy of the index entry for value
func (c *Catalog) Item(attr Attribute, value string) (*domain.Item, bool) {
	item, ok := c.indexes[attr][value]
	if !ok {
		return nil, false
	}
	return cloneItem(item), true
}

// Items returns a copy of every value of attr sorted by name
func (c *Catalog) Items(attr Attribute) QueryResult[*domain.Item] {
	index := c.indexes[attr]
	items := make([]*domain.Item, 0, len(index))
	for _, item := range index {
		items = append(items, cloneItem(item))
	}
	slices.SortFunc(items, func(a, b *domain.Item) int {
		return strings.Compare(a.Name, b.Name)
	})
	return newResult(items)
}

// Duplicates returns the names carried by more than one game, in input order
// of their second occurrence.
func (c *Catalog) Duplicates() []string {
	return duplicates(c.order, bloom.NewWithEstimates(uint(max(len(c.order), 1)), 0.001))
}

// duplicates runs in two passes. The filter flags names it may have seen
// before; only those are counted exactly, so a false positive costs a map
// entry and is never reported.
func duplicates(games []*domain.Game, filter *bloom.BloomFilter) []string {
	candidates := make(map[string]int)
	for _, g := range games {
		if filter.TestAndAddString(g.Name) {
			candidates[g.Name] = 0
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var dups []string
	for _, g := range games {
		n, ok := candidates[g.Name]
		if !ok {
			continue
		}
		candidates[g.Name] = n + 1
		if n+1 == 2 {
			dups = append(dups, g.Name)
		}
	}
	return dups
}

func cloneItem(item *domain.Item) *domain.Item {
	return &domain.Item{Name: item.Name, Games: slices.Clone(item.Games)}
}

func (c *Catalog) where(keep func(*domain.Game) bool) QueryResult[*domain.Game] {
	var games []*domain.Game
	for _, g := range c.order {
		if keep(g) {
			games = append(games, g)
		}
	}
	return gameResult(games)
}

func gameResult(games []*domain.Game) QueryResult[*domain.Game] {
	slices.SortFunc(games, domain.CompareByName)
	return newResult(games)
}

func containsFold(s, pattern string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
}
