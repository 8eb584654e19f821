package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pobsd/internal/application/commands"
	"pobsd/internal/catalog"
	"pobsd/internal/domain"
	"pobsd/internal/ports"
)

// RegisterReadTools adds all catalog query tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, cat ports.GameCatalog) {
	s.AddTool(getGameTool(), getGameHandler(cat))
	s.AddTool(searchTool(), searchHandler(cat))
	s.AddTool(findTool(), findHandler(cat))
	s.AddTool(listTool(), listHandler(cat))
	s.AddTool(filterTool(), filterHandler(cat))
}

// --- get_game ---

func getGameTool() mcp.Tool {
	return mcp.NewTool("get_game",
		mcp.WithDescription("Show every field of a game by its numeric ID, in database form."),
		mcp.WithString("id",
			mcp.Description("Game ID as returned by the other tools (e.g. 42)"),
			mcp.Required(),
		),
	)
}

func getGameHandler(cat ports.GameCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		game, err := commands.NewShowCommand(cat, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatGameDetail(game)), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search over game names, developers and publishers. Returns games with their IDs, best matches first."),
		mcp.WithString("query",
			mcp.Description("Search query, at least 2 characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(cat ports.GameCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(cat, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  [%d]\n", formatGame(r.Game), r.Score)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- find ---

func findTool() mcp.Tool {
	return mcp.NewTool("find",
		mcp.WithDescription("List the games having exactly the given value for an attribute."),
		mcp.WithString("attribute",
			mcp.Description("One of name, engine, runtime, genre, tag, year, dev, pub"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("Exact, case-sensitive value (e.g. Godot, RPG, 2018)"),
			mcp.Required(),
		),
	)
}

func findHandler(cat ports.GameCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewFindCommand(cat, req.GetString("attribute", ""), req.GetString("value", ""))
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(res.Items, formatGame)
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("Without arguments lists every game. With an attribute lists its distinct values and how many games have each."),
		mcp.WithString("attribute",
			mcp.Description("One of engine, runtime, genre, tag, year, dev, pub. Omit to list games."),
		),
	)
}

func listHandler(cat ports.GameCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		attribute := req.GetString("attribute", "")

		if attribute == "" {
			res, err := commands.NewListGamesCommand(cat).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(res.Items, formatGame)
		}

		res, err := commands.NewListItemsCommand(cat, attribute).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(res.Items, formatItem)
	}
}

// --- filter ---

func filterTool() mcp.Tool {
	return mcp.NewTool("filter",
		mcp.WithDescription("List games by case-insensitive substring patterns. Patterns left out are ignored."),
		mcp.WithString("name", mcp.Description("Pattern matched against the game name")),
		mcp.WithString("engine", mcp.Description("Pattern matched against the engine")),
		mcp.WithString("runtime", mcp.Description("Pattern matched against the runtime")),
		mcp.WithString("genre", mcp.Description("Pattern matched against each genre")),
		mcp.WithString("tag", mcp.Description("Pattern matched against each tag")),
		mcp.WithString("year", mcp.Description("Pattern matched against the year")),
		mcp.WithString("dev", mcp.Description("Pattern matched against the developer")),
		mcp.WithString("pub", mcp.Description("Pattern matched against the publisher")),
		mcp.WithString("match",
			mcp.Description("all (default) keeps games matching every pattern, any keeps games matching at least one"),
			mcp.Enum("all", "any"),
		),
	)
}

func filterHandler(cat ports.GameCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := catalog.Filter{
			Name:      req.GetString("name", ""),
			Engine:    req.GetString("engine", ""),
			Runtime:   req.GetString("runtime", ""),
			Genre:     req.GetString("genre", ""),
			Tag:       req.GetString("tag", ""),
			Year:      req.GetString("year", ""),
			Dev:       req.GetString("dev", ""),
			Publisher: req.GetString("pub", ""),
		}

		var matchAny bool
		switch match := req.GetString("match", "all"); match {
		case "all":
		case "any":
			matchAny = true
		default:
			return toolError(fmt.Errorf("invalid match: %s (expected all or any)", match))
		}

		res, err := commands.NewFilterCommand(cat, filter, matchAny).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(res.Items, formatGame)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatGame(g *domain.Game) string {
	if g.Year == "" {
		return fmt.Sprintf("%d  %s", g.ID, g.Name)
	}
	return fmt.Sprintf("%d  %s (%s)", g.ID, g.Name, g.Year)
}

func formatItem(i *domain.Item) string {
	return fmt.Sprintf("%s  %d", i.Name, i.Count())
}

func formatGameDetail(g *domain.Game) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID\t%d\nUUID\t%s\n", g.ID, g.UUID)
	sb.WriteString(g.String())
	sb.WriteByte('\n')
	for _, link := range g.StoreLinks() {
		fmt.Fprintf(&sb, "Link\t%s\t%s\n", link.Kind, link.URL)
	}
	return sb.String()
}
