package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/larder/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can parse
ingredient lines.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead. The HTTP server is rate limited
and exposes Prometheus metrics on /metrics.

Examples:
  # Stdio mode (default)
  larder mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  larder mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "larder": {
        "command": "/path/to/larder",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireParse(); err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Parse: parseService})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
