package commands

import (
	"context"
	"sort"
	"strings"

	"pobsd/internal/domain"
	"pobsd/internal/ports"
)

// SearchResult is a game with its relevance to a query
type SearchResult struct {
	Game  *domain.Game `json:"game"`
	Score int          `json:"score"`
}

// SearchCommand searches game names, developers and publishers with fuzzy matching
type SearchCommand struct {
	catalog ports.GameCatalog
	Query   string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(cat ports.GameCatalog, query string) *SearchCommand {
	return &SearchCommand{
		catalog: cat,
		Query:   query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < 2 {
		return nil, nil
	}

	return FuzzySort(c.catalog.Games().Items, query), nil
}

// Score bands, best first. Fuzzy matches always rank below a substring hit.
const (
	scoreExact     = 200
	scorePrefix    = 150
	scoreWordStart = 120
	scoreContains  = 100
	scoreInitials  = 90
	scoreFuzzyMax  = 89
)

// TitleScore rates how well a game title matches query, 0 meaning no match.
// A leading "The " or "A " is ignored, so "witness" is an exact hit for
// "The Witness" and "hat in" a prefix hit for "A Hat in Time". Queries like
// "sv" match the initials of "Stardew Valley".
func TitleScore(title, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || title == "" {
		return 0
	}

	full := strings.ToLower(title)
	key := domain.TitleKey(title)
	switch {
	case key == query || full == query:
		return scoreExact
	case strings.HasPrefix(key, query) || strings.HasPrefix(full, query):
		return scorePrefix
	case hasWordPrefix(key, query):
		return scoreWordStart
	case strings.Contains(key, query):
		return scoreContains
	case matchesInitials(key, query):
		return scoreInitials
	}
	return fuzzyScore(key, query)
}

func isWordSeparator(b byte) bool {
	switch b {
	case ' ', ':', '-', '.', '_', '/', '(', '\'':
		return true
	}
	return false
}

func isWordStart(s string, i int) bool {
	return i == 0 || isWordSeparator(s[i-1])
}

// hasWordPrefix reports whether some word of s starts with query
func hasWordPrefix(s, query string) bool {
	for i := range len(s) {
		if isWordStart(s, i) && strings.HasPrefix(s[i:], query) {
			return true
		}
	}
	return false
}

// matchesInitials reports whether query is spelled by the first letters of
// successive words of s, possibly skipping words
func matchesInitials(s, query string) bool {
	if strings.ContainsAny(query, " :-._/('") {
		return false
	}
	q := 0
	for i := 0; i < len(s) && q < len(query); i++ {
		if isWordStart(s, i) && !isWordSeparator(s[i]) && s[i] == query[q] {
			q++
		}
	}
	return q == len(query)
}

// fuzzyScore matches the characters of query in order anywhere in s,
// rewarding runs and word starts
func fuzzyScore(s, query string) int {
	score := 0
	q := 0
	prev := -2

	for i := 0; i < len(s) && q < len(query); i++ {
		if s[i] != query[q] {
			continue
		}
		score++
		if prev == i-1 {
			score += 10
		}
		if isWordStart(s, i) {
			score += 10
		}
		prev = i
		q++
	}

	if q < len(query) {
		return 0
	}
	return min(score, scoreFuzzyMax)
}

// FuzzySort scores games against the query and sorts them by relevance.
// The name counts in full, developer and publisher at half weight.
// Games that do not match are dropped.
func FuzzySort(games []*domain.Game, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(games))

	for _, g := range games {
		best := max(
			TitleScore(g.Name, query),
			TitleScore(g.Dev, query)/2,
			TitleScore(g.Publisher, query)/2,
		)

		if best > 0 {
			scored = append(scored, SearchResult{
				Game:  g,
				Score: best,
			})
		}
	}

	// Sort by score descending, display order among equals
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
