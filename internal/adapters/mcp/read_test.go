package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pobsd/internal/adapters/filesystem"
	"pobsd/internal/catalog"
	"pobsd/internal/domain"
	"pobsd/internal/parser"
)

func testCatalog() *catalog.Catalog {
	return catalog.Build([]domain.Game{
		{Name: "Celeste", Engine: "XNA", Runtime: "FNA", Genres: []string{"Platformer"}, Year: "2018",
			Stores: []string{"https://store.steampowered.com/app/504230"}},
		{Name: "Northgard", Engine: "Heaps", Runtime: "HashLink", Genres: []string{"Strategy"}, Year: "2018"},
		{Name: "Stardew Valley", Engine: "XNA", Runtime: "FNA", Genres: []string{"Simulation"}},
	})
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("handler returned no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestReadTools(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name    string
		handler server.ToolHandlerFunc
		args    map[string]any
		want    []string
		wantErr bool
	}{
		{
			name:    "get_game",
			handler: getGameHandler(cat),
			args:    map[string]any{"id": "1"},
			want:    []string{"Game\tCeleste", "Engine\tXNA", "Link\tSteam\thttps://store.steampowered.com/app/504230"},
		},
		{
			name:    "get_game missing",
			handler: getGameHandler(cat),
			args:    map[string]any{"id": "9"},
			want:    []string{"game 9 not found"},
			wantErr: true,
		},
		{
			name:    "search",
			handler: searchHandler(cat),
			args:    map[string]any{"query": "north"},
			want:    []string{"2  Northgard (2018)  [150]"},
		},
		{
			name:    "search without query",
			handler: searchHandler(cat),
			args:    map[string]any{},
			want:    []string{"query is required"},
			wantErr: true,
		},
		{
			name:    "find",
			handler: findHandler(cat),
			args:    map[string]any{"attribute": "engine", "value": "XNA"},
			want:    []string{"1  Celeste (2018)\n3  Stardew Valley\n"},
		},
		{
			name:    "find bad attribute",
			handler: findHandler(cat),
			args:    map[string]any{"attribute": "colour", "value": "red"},
			want:    []string{"invalid attribute"},
			wantErr: true,
		},
		{
			name:    "list games",
			handler: listHandler(cat),
			args:    map[string]any{},
			want:    []string{"1  Celeste (2018)\n2  Northgard (2018)\n3  Stardew Valley\n"},
		},
		{
			name:    "list runtimes",
			handler: listHandler(cat),
			args:    map[string]any{"attribute": "runtime"},
			want:    []string{"FNA  2\nHashLink  1\n"},
		},
		{
			name:    "filter any",
			handler: filterHandler(cat),
			args:    map[string]any{"genre": "strat", "name": "valley", "match": "any"},
			want:    []string{"2  Northgard (2018)\n3  Stardew Valley\n"},
		},
		{
			name:    "filter all without match",
			handler: filterHandler(cat),
			args:    map[string]any{"genre": "strat", "name": "valley"},
			want:    []string{"No results."},
		},
		{
			name:    "filter bad match",
			handler: filterHandler(cat),
			args:    map[string]any{"name": "a", "match": "some"},
			want:    []string{"invalid match"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, tt.handler, tt.args)
			if isErr != tt.wantErr {
				t.Errorf("expected IsError = %v, got %v (%s)", tt.wantErr, isErr, text)
			}
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("expected output containing %q, got:\n%s", want, text)
				}
			}
		})
	}
}

func TestCheckTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	content := "Game\tCeleste\nCover\nRating\t5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write database: %v", err)
	}
	handler := checkHandler(filesystem.NewSource(path), parser.Relaxed)

	text, isErr := call(t, handler, map[string]any{})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	for _, want := range []string{"1 games, 3 lines read (relaxed)", "line 3 ignored", `line 3 unknown field "Rating"`} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output containing %q, got:\n%s", want, text)
		}
	}

	text, _ = call(t, handler, map[string]any{"mode": "strict"})
	if !strings.Contains(text, "line 3 stopped at") {
		t.Errorf("expected strict report, got:\n%s", text)
	}

	text, isErr = call(t, handler, map[string]any{"mode": "lenient"})
	if !isErr || !strings.Contains(text, "parsing mode") {
		t.Errorf("expected mode validation error, got %v: %s", isErr, text)
	}
}
