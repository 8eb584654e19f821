package catalog

import (
	"fmt"
	"strings"

	"pobsd/internal/domain"
)

// Attribute names a secondary index
type Attribute int

const (
	AttrEngine Attribute = iota
	AttrRuntime
	AttrGenre
	AttrTag
	AttrYear
	AttrDev
	AttrPublisher
)

// Attributes lists every indexed attribute in display order
var Attributes = []Attribute{AttrEngine, AttrRuntime, AttrGenre, AttrTag, AttrYear, AttrDev, AttrPublisher}

func (a Attribute) String() string {
	switch a {
	case AttrEngine:
		return "engine"
	case AttrRuntime:
		return "runtime"
	case AttrGenre:
		return "genre"
	case AttrTag:
		return "tag"
	case AttrYear:
		return "year"
	case AttrDev:
		return "dev"
	case AttrPublisher:
		return "pub"
	default:
		return "unknown"
	}
}

// ParseAttribute accepts the short names and a few long forms
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "engine", "engines":
		return AttrEngine, nil
	case "runtime", "runtimes":
		return AttrRuntime, nil
	case "genre", "genres":
		return AttrGenre, nil
	case "tag", "tags":
		return AttrTag, nil
	case "year", "years":
		return AttrYear, nil
	case "dev", "devs", "developer", "developers":
		return AttrDev, nil
	case "pub", "pubs", "publisher", "publishers":
		return AttrPublisher, nil
	default:
		return 0, fmt.Errorf("unknown attribute %q", s)
	}
}

// values returns the values a game has for the attribute
func (a Attribute) values(g *domain.Game) []string {
	var single string
	switch a {
	case AttrEngine:
		single = g.Engine
	case AttrRuntime:
		single = g.Runtime
	case AttrGenre:
		return g.Genres
	case AttrTag:
		return g.Tags
	case AttrYear:
		single = g.Year
	case AttrDev:
		single = g.Dev
	case AttrPublisher:
		single = g.Publisher
	}
	if single == "" {
		return nil
	}
	return []string{single}
}
