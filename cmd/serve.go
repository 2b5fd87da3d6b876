package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasklens/pkg/mcp"
)

var serveVault string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Serve exposes the query_tasks and get_statistics tools to MCP clients
over stdio. The vault may be fixed at startup with --vault; otherwise each
tool call must carry a vault_path argument or the ` + mcp.EnvVaultPath + `
environment variable must be set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveVault, "vault", "", "Default vault for tool calls")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := loadTasklensConfig(".")

	// The vault is optional here; tool calls can name one per call.
	resolver := &mcp.VaultResolver{Fixed: serveVault}
	if config != nil {
		resolver.Default = config.Vault
	}

	s := mcp.New(getVersionString(), resolver, newParser(config))
	if err := mcp.Serve(s); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
