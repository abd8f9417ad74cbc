package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/mcp"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose site search to AI assistants",
	Long:  `Serve the site's search, tags and records over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Builds the index, then serves it to an MCP client.

Tools:
  search   rank posts, release notes and docs for a query
  tags     tag counts, optionally for one source or category

Resources:
  sercha://sources                      record count per source
  sercha://sources/{source}/content     records of one source
  sercha://content/{source}/{slug}      markdown body of one record

Stdio is used unless --port is given, in which case the server speaks
streamable HTTP (for MCP Inspector or remote clients).

Client configuration:
  {
    "mcpServers": {
      "sercha-site": {
        "command": "/path/to/sercha-site",
        "args": ["--config", "/path/to/sercha-site.toml", "mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:  searchService,
		Content: contentService,
		Tags:    tagService,
	}

	server, err := mcp.NewServer(ports, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if err := ensureIndex(cmd.Context()); err != nil {
		return err
	}

	if port > 0 {
		logger.SetTimestamps(true)
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
