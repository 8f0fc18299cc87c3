package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/foomo/workspace-sidebar/api"
	"github.com/foomo/workspace-sidebar/config"
	"github.com/foomo/workspace-sidebar/mcp"
	"github.com/foomo/workspace-sidebar/service"
	"github.com/foomo/workspace-sidebar/state"
	"github.com/foomo/workspace-sidebar/workspace"
)

func main() {
	stdioMode := flag.Bool("stdio", false, "Force stdio mode even if an HTTP address is configured")
	httpAddr := flag.String("http", "", "HTTP server address (e.g., ':8080'), overrides HTTP_ADDR")
	envFile := flag.String("env-file", "", "Path to .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	stateStore, err := state.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	workspaceClient := workspace.NewClient(cfg.WorkspaceURL, nil)
	serviceInstance := service.NewService(workspaceClient, stateStore)
	s := mcp.NewServer(serviceInstance)

	addr := *httpAddr
	if addr == "" {
		addr = cfg.HTTPAddr
	}

	if addr != "" && !*stdioMode {
		// Combined server: host-page API at the root, MCP and SSE under the
		// configured endpoint. Toggles on either surface notify SSE clients.
		sseServer := mcp.NewMcpHTTPSSEServer(logger, s, serviceInstance, cfg.MCPEndpoint, nil)
		mux := http.NewServeMux()
		mux.Handle("/", api.NewServer(logger, serviceInstance, sseServer.GetSSEServer()))
		mux.Handle(cfg.MCPEndpoint, sseServer)
		mux.Handle(cfg.MCPEndpoint+"/", sseServer)

		log.Printf("Starting workspace sidebar server on HTTP address: %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Start the stdio server
	log.Println("Starting MCP server in stdio mode...")
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
