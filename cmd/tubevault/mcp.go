package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tubevault/tubevault/internal/config"
	"github.com/tubevault/tubevault/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server",
		Long:  "Start the Model Context Protocol server, exposing the archival operations as tools over stdio.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(cfg, newLogger())
			if err != nil {
				return err
			}

			return server.Run(context.Background())
		},
	}
}
