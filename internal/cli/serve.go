package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/log"
	"github.com/mark-chris/cybuddy/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI agent integration",
	Long: `Start a Model Context Protocol (MCP) server on stdin/stdout.

The server exposes the cybuddy_ask tool so MCP-compatible AI coding
assistants can query the knowledge base. Logs go to stderr; stdout
carries only protocol messages.

Examples:
  # Start the stdio server
  cybuddy serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info("MCP server listening on stdio (%d knowledge entries)", library.Count())
	return mcp.NewServer(responder).ServeStdio(os.Stdin, os.Stdout)
}
