package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pobsd/internal/adapters/filesystem"
	mcpadapter "pobsd/internal/adapters/mcp"
	"pobsd/internal/application"
	"pobsd/internal/application/commands"
	"pobsd/internal/config"
	"pobsd/internal/ctxlog"
)

func main() {
	config.LoadEnvFile()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("pobsd-mcp: %v", err)
	}

	databaseFlag := flag.String("database", cfg.DatabasePath, "path to the games database")
	modeFlag := flag.String("mode", cfg.Mode, "parsing mode (strict or relaxed)")
	flag.Parse()

	mode, err := application.ValidateMode("mode", *modeFlag)
	if err != nil {
		log.Fatalf("pobsd-mcp: %v", err)
	}

	// stdout carries the protocol, logs go to stderr
	logger := ctxlog.New(os.Stderr, cfg.LogLevel)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	source := filesystem.NewSource(*databaseFlag)
	loaded, err := commands.NewLoadCommand(source, mode).Execute(ctx)
	if loaded == nil {
		log.Fatalf("pobsd-mcp: %v", err)
	}
	if err != nil {
		logger.Warn("serving a partial catalog", "error", err)
	}

	mcpServer := server.NewMCPServer(
		"pobsd-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, loaded.Catalog)
	mcpadapter.RegisterCheckTool(mcpServer, source, mode)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pobsd-mcp: %v", err)
	}
}
