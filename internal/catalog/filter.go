package catalog

import "pobsd/internal/domain"

// Filter holds case-insensitive substring patterns. Empty patterns are not
// criteria.
type Filter struct {
	Name      string
	Engine    string
	Runtime   string
	Genre     string
	Tag       string
	Year      string
	Dev       string
	Publisher string
}

// IsEmpty reports whether no pattern is set
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

type criterion struct {
	pattern string
	values  func(*domain.Game) []string
}

func (f Filter) criteria() []criterion {
	all := []criterion{
		{f.Name, func(g *domain.Game) []string { return []string{g.Name} }},
		{f.Engine, AttrEngine.values},
		{f.Runtime, AttrRuntime.values},
		{f.Genre, AttrGenre.values},
		{f.Tag, AttrTag.values},
		{f.Year, AttrYear.values},
		{f.Dev, AttrDev.values},
		{f.Publisher, AttrPublisher.values},
	}
	set := all[:0]
	for _, c := range all {
		if c.pattern != "" {
			set = append(set, c)
		}
	}
	return set
}

func (c criterion) matches(g *domain.Game) bool {
	for _, v := range c.values(g) {
		if containsFold(v, c.pattern) {
			return true
		}
	}
	return false
}

// MatchAll returns the games matching every pattern of f. An empty filter
// matches every game.
func (c *Catalog) MatchAll(f Filter) QueryResult[*domain.Game] {
	criteria := f.criteria()
	return c.where(func(g *domain.Game) bool {
		for _, cr := range criteria {
			if !cr.matches(g) {
				return false
			}
		}
		return true
	})
}

// MatchAny returns the games matching at least one pattern of f. An empty
// filter matches nothing.
func (c *Catalog) MatchAny(f Filter) QueryResult[*domain.Game] {
	criteria := f.criteria()
	return c.where(func(g *domain.Game) bool {
		for _, cr := range criteria {
			if cr.matches(g) {
				return true
			}
		}
		return false
	})
}
