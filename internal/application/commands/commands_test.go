package commands

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"pobsd/internal/adapters/filesystem"
	"pobsd/internal/catalog"
	"pobsd/internal/ctxlog"
	"pobsd/internal/domain"
)

func testCatalog() *catalog.Catalog {
	return catalog.Build([]domain.Game{
		{
			Name: "Celeste", Engine: "XNA", Runtime: "FNA",
			Genres: []string{"Platformer"}, Tags: []string{"pixel art"},
			Year: "2018", Dev: "Maddy Makes Games", Publisher: "Maddy Makes Games",
		},
		{
			Name: "Stardew Valley", Engine: "XNA", Runtime: "FNA",
			Genres: []string{"Simulation", "RPG"}, Tags: []string{"farming", "pixel art"},
			Year: "2016", Dev: "ConcernedApe", Publisher: "Humble Games",
		},
		{
			Name: "Northgard", Engine: "Heaps", Runtime: "HashLink",
			Genres: []string{"Strategy"},
			Year: "2018", Dev: "Shiro Games", Publisher: "Shiro Games",
		},
	})
}

// dbRecord renders a complete record in database form
func dbRecord(name, engine, year string) string {
	return strings.Join([]string{
		"Game\t" + name,
		"Cover",
		"Engine\t" + engine,
		"Setup",
		"Runtime\tFNA",
		"Store\thttps://store.steampowered.com/app/1",
		"Hints",
		"Genre\tPlatformer",
		"Tags\tpixel art",
		"Year\t" + year,
		"Dev",
		"Pub",
		"Version",
		"Status\tcompletable",
		"Added\t2020/01/02",
		"Updated\t2021/03/04",
	}, "\n") + "\n"
}

// writeDatabase writes content to a database file in a temp directory
func writeDatabase(t *testing.T, content string) *filesystem.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openbsd-games.db")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write database: %v", err)
	}
	return filesystem.NewSource(path)
}

func quietContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func equalInts(a, b []int) bool {
	return slices.Equal(a, b)
}

func gameIDs(games []*domain.Game) []int {
	var ids []int
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}
