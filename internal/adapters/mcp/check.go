package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pobsd/internal/application"
	"pobsd/internal/application/commands"
	"pobsd/internal/parser"
	"pobsd/internal/ports"
)

// RegisterCheckTool adds the database health check to the MCP server.
// The check re-reads the source, so it reflects edits made since startup.
func RegisterCheckTool(s *server.MCPServer, source ports.DatabaseSource, mode parser.Mode) {
	s.AddTool(checkTool(mode), checkHandler(source, mode))
}

func checkTool(mode parser.Mode) mcp.Tool {
	return mcp.NewTool("check",
		mcp.WithDescription("Parse the database again and report ignored lines, unknown field names and duplicated game names."),
		mcp.WithString("mode",
			mcp.Description(fmt.Sprintf("Parsing mode, strict or relaxed. Defaults to %s.", mode)),
			mcp.Enum(parser.Relaxed.String(), parser.Strict.String()),
		),
	)
}

func checkHandler(source ports.DatabaseSource, defaultMode parser.Mode) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode, err := application.ValidateMode("mode", req.GetString("mode", defaultMode.String()))
		if err != nil {
			return toolError(err)
		}

		report, err := commands.NewCheckCommand(source, mode).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatReport(report)), nil
	}
}

func formatReport(r *commands.CheckReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d games, %d lines read (%s)\n", r.Source, r.Games, r.Lines, r.Mode)

	if r.OK() {
		sb.WriteString("No ignored lines.\n")
	} else {
		verb := "ignored"
		if r.Halted {
			verb = "stopped at"
		}
		for _, line := range r.BadLines {
			fmt.Fprintf(&sb, "line %d %s\n", line, verb)
		}
	}
	for _, u := range r.Unknown {
		fmt.Fprintf(&sb, "line %d unknown field %q\n", u.Line, u.Field.Left)
	}
	for _, name := range r.Duplicates {
		fmt.Fprintf(&sb, "duplicated game %q\n", name)
	}
	return sb.String()
}
