package mcp

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"tasklens/pkg/parser"
	"tasklens/pkg/vault"
)

// EnvVaultPath names the environment variable consulted when a tool call
// carries no vault_path argument and no default was configured.
const EnvVaultPath = "TASKLENS_VAULT_PATH"

// VaultResolver picks the vault root for a tool call. Precedence follows
// the CLI: per-call argument, then the server's --vault flag, then the
// environment variable, then the config-file default.
type VaultResolver struct {
	// Fixed is the vault set by an explicit flag at server start.
	Fixed string

	// Default is the vault from the config file; weakest source.
	Default string
}

// Resolve returns the vault root for a call, or a configuration error when
// none is available.
func (r *VaultResolver) Resolve(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if r.Fixed != "" {
		return r.Fixed, nil
	}
	if env := os.Getenv(EnvVaultPath); env != "" {
		return env, nil
	}
	if r.Default != "" {
		return r.Default, nil
	}
	return "", fmt.Errorf("no vault path: pass vault_path or set %s", EnvVaultPath)
}

// New creates the MCP server with the query and statistics tools
// registered. All tools share one parse cache, so repeated calls only
// re-read files that changed. Both resolver fields may be empty.
func New(version string, resolver *VaultResolver, p *parser.Parser) *server.MCPServer {
	s := server.NewMCPServer(
		"tasklens",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	cache := vault.NewCache(p)

	queryTool := NewQueryTool(cache, resolver)
	s.AddTool(queryTool.Definition(), queryTool.Handle)

	statsTool := NewStatisticsTool(cache, resolver)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	return s
}

// Serve runs the server on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
