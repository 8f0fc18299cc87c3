// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the service needs at startup.
type Config struct {
	// WorkspaceURL is the base URL of the workspace metadata service.
	WorkspaceURL string `envconfig:"WORKSPACE_URL" required:"true"`
	// HTTPAddr is the address the combined API/MCP/SSE server listens on.
	// Empty means stdio mode unless -http is given.
	HTTPAddr string `envconfig:"HTTP_ADDR"`
	// MCPEndpoint is the path prefix for the MCP and SSE endpoints.
	MCPEndpoint string `envconfig:"MCP_ENDPOINT" default:"/mcp"`
	// DBPath is the SQLite file holding the persisted expansion state.
	DBPath string `envconfig:"DB_PATH" default:"workspace-sidebar.db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the optional env file, then the environment. envFile may be
// empty, in which case a .env in the working directory is picked up if
// present.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// best effort, a missing .env is fine
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}
