package domain

import (
	"cmp"
	"strings"

	"github.com/google/uuid"
)

// gameNamespace scopes the name-based UUIDs given to games
var gameNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://playonbsd.com/games"))

// Game is one assembled record of the database.
// Name is always set; every other attribute may be empty.
type Game struct {
	ID        int      `json:"id"`
	UUID      string   `json:"uuid,omitempty"`
	Name      string   `json:"name"`
	Cover     string   `json:"cover,omitempty"`
	Engine    string   `json:"engine,omitempty"`
	Setup     string   `json:"setup,omitempty"`
	Runtime   string   `json:"runtime,omitempty"`
	Stores    []string `json:"stores,omitempty"`
	Hints     string   `json:"hints,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Year      string   `json:"year,omitempty"`
	Dev       string   `json:"dev,omitempty"`
	Publisher string   `json:"pub,omitempty"`
	Version   string   `json:"version,omitempty"`
	Status    string   `json:"status,omitempty"`
	Added     string   `json:"added,omitempty"`
	Updated   string   `json:"updated,omitempty"`
}

// StableID derives an identifier from the game name that does not change
// between loads of the same database.
func StableID(name string) string {
	return uuid.NewSHA1(gameNamespace, []byte(name)).String()
}

// SortKey returns the key used for display ordering
func (g *Game) SortKey() string {
	return TitleKey(g.Name)
}

// TitleKey drops a leading "The " or "A " from a title and lowercases the rest
func TitleKey(title string) string {
	if rest, ok := strings.CutPrefix(title, "The "); ok {
		title = rest
	} else if rest, ok := strings.CutPrefix(title, "A "); ok {
		title = rest
	}
	return strings.ToLower(title)
}

// CompareByID orders games by assembly order
func CompareByID(a, b *Game) int {
	return cmp.Compare(a.ID, b.ID)
}

// CompareByName orders games by display key, falling back to id for ties
func CompareByName(a, b *Game) int {
	if c := strings.Compare(a.SortKey(), b.SortKey()); c != 0 {
		return c
	}
	return CompareByID(a, b)
}

// Fields returns the record as the sixteen fields it was parsed from
func (g *Game) Fields() []Field {
	return []Field{
		{Kind: FieldGame, Value: g.Name},
		{Kind: FieldCover, Value: g.Cover},
		{Kind: FieldEngine, Value: g.Engine},
		{Kind: FieldSetup, Value: g.Setup},
		{Kind: FieldRuntime, Value: g.Runtime},
		{Kind: FieldStore, Values: g.Stores},
		{Kind: FieldHints, Value: g.Hints},
		{Kind: FieldGenre, Values: g.Genres},
		{Kind: FieldTags, Values: g.Tags},
		{Kind: FieldYear, Value: g.Year},
		{Kind: FieldDev, Value: g.Dev},
		{Kind: FieldPub, Value: g.Publisher},
		{Kind: FieldVersion, Value: g.Version},
		{Kind: FieldStatus, Value: g.Status},
		{Kind: FieldAdded, Value: g.Added},
		{Kind: FieldUpdated, Value: g.Updated},
	}
}

// String renders the record in database form, one field per line
func (g *Game) String() string {
	var sb strings.Builder
	for i, f := range g.Fields() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}

// NormalizeDates rewrites Added and Updated from 2012/12/03 to 2012-12-03
func (g *Game) NormalizeDates() {
	g.Added = strings.ReplaceAll(g.Added, "/", "-")
	g.Updated = strings.ReplaceAll(g.Updated, "/", "-")
}

// StoreLinks classifies every store url of the game
func (g *Game) StoreLinks() []StoreLink {
	links := make([]StoreLink, 0, len(g.Stores))
	for _, url := range g.Stores {
		links = append(links, NewStoreLink(url))
	}
	return links
}
