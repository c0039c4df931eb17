// Package mcp exposes the archival operations as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tubevault/tubevault/internal/config"
	"github.com/tubevault/tubevault/internal/database"
	"github.com/tubevault/tubevault/internal/enrich"
	"github.com/tubevault/tubevault/internal/takeout"
	"github.com/tubevault/tubevault/internal/usecase"
	"github.com/tubevault/tubevault/internal/youtube"
)

// Server wraps the MCP server around the archival pipeline.
type Server struct {
	server   *mcp.Server
	dbCtx    *database.Context
	archiver *usecase.Archiver
}

// NewServer opens the archive and builds the tool surface.
func NewServer(cfg config.Config, logger *slog.Logger) (*Server, error) {
	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	extractor := youtube.NewYtdlpExtractor(cfg.YtdlpPath, cfg.FetchComments)
	resolver := youtube.NewResolver(extractor, logger)
	enricher := enrich.NewClient(cfg.DownloadThumbnails, logger)

	// Progress output would corrupt the stdio transport, so batches log
	// through the structured logger only.
	archiver := usecase.NewArchiver(dbCtx, resolver, extractor, enricher, logger, io.Discard)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "tubevault",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server:   mcpServer,
		dbCtx:    dbCtx,
		archiver: archiver,
	}
	s.registerTools()

	return s, nil
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	defer database.CloseDatabase(s.dbCtx)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "archive_video",
		Description: "Archive metadata for a single YouTube video",
	}, s.handleArchiveVideo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "archive_playlist",
		Description: "Archive a playlist and all of its member videos, replacing any stored snapshot",
	}, s.handleArchivePlaylist)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "archive_history",
		Description: "Archive every video in a Google Takeout watch-history JSON file",
	}, s.handleArchiveHistory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dump_thumbnails",
		Description: "Export all stored thumbnails to a directory",
	}, s.handleDumpThumbnails)
}

// Input/Output types for each tool

type ArchiveVideoInput struct {
	ID string `json:"id" jsonschema:"required,description=The 11-character YouTube video id"`
}

type ArchiveVideoOutput struct {
	Status string `json:"status"`
}

type ArchivePlaylistInput struct {
	ID string `json:"id" jsonschema:"required,description=The YouTube playlist id"`
}

type ArchivePlaylistOutput struct {
	Title    string `json:"title"`
	Total    int    `json:"total"`
	Archived int    `json:"archived"`
	Failed   int    `json:"failed"`
	Skipped  int    `json:"skipped"`
}

type ArchiveHistoryInput struct {
	Path string `json:"path" jsonschema:"required,description=Path to the exported watch-history.json file"`
}

type ArchiveHistoryOutput struct {
	Total       int `json:"total"`
	Archived    int `json:"archived"`
	Failed      int `json:"failed"`
	Skipped     int `json:"skipped"`
	Unavailable int `json:"unavailable"`
}

type DumpThumbnailsInput struct {
	Dir *string `json:"dir,omitempty" jsonschema:"description=Destination directory (default thumbnails)"`
}

type DumpThumbnailsOutput struct {
	Dumped int `json:"dumped"`
}

// Tool handlers

func (s *Server) handleArchiveVideo(ctx context.Context, req *mcp.CallToolRequest, input ArchiveVideoInput) (*mcp.CallToolResult, ArchiveVideoOutput, error) {
	status, err := s.archiver.ArchiveVideo(ctx, input.ID)
	if err != nil {
		return nil, ArchiveVideoOutput{}, fmt.Errorf("failed to archive video: %w", err)
	}

	return nil, ArchiveVideoOutput{Status: string(status)}, nil
}

func (s *Server) handleArchivePlaylist(ctx context.Context, req *mcp.CallToolRequest, input ArchivePlaylistInput) (*mcp.CallToolResult, ArchivePlaylistOutput, error) {
	playlist, err := s.archiver.ResolvePlaylist(ctx, input.ID)
	if err != nil {
		return nil, ArchivePlaylistOutput{}, err
	}

	report, err := s.archiver.ArchivePlaylist(ctx, playlist)
	if err != nil {
		return nil, ArchivePlaylistOutput{}, fmt.Errorf("failed to archive playlist: %w", err)
	}

	return nil, ArchivePlaylistOutput{
		Title:    playlist.Title,
		Total:    report.Total,
		Archived: report.Archived,
		Failed:   report.Failed,
		Skipped:  report.Skipped,
	}, nil
}

func (s *Server) handleArchiveHistory(ctx context.Context, req *mcp.CallToolRequest, input ArchiveHistoryInput) (*mcp.CallToolResult, ArchiveHistoryOutput, error) {
	file, err := os.Open(input.Path)
	if err != nil {
		return nil, ArchiveHistoryOutput{}, fmt.Errorf("failed to open history export: %w", err)
	}
	defer file.Close()

	export, err := takeout.ParseHistoryJSON(file)
	if err != nil {
		return nil, ArchiveHistoryOutput{}, err
	}

	report, err := s.archiver.ArchiveHistory(ctx, export)
	if err != nil {
		return nil, ArchiveHistoryOutput{}, fmt.Errorf("failed to archive history: %w", err)
	}

	return nil, ArchiveHistoryOutput{
		Total:       report.Total,
		Archived:    report.Archived,
		Failed:      report.Failed,
		Skipped:     report.Skipped,
		Unavailable: report.Unavailable,
	}, nil
}

func (s *Server) handleDumpThumbnails(ctx context.Context, req *mcp.CallToolRequest, input DumpThumbnailsInput) (*mcp.CallToolResult, DumpThumbnailsOutput, error) {
	dir := "thumbnails"
	if input.Dir != nil && *input.Dir != "" {
		dir = *input.Dir
	}

	dumped, err := s.archiver.DumpThumbnails(ctx, dir)
	if err != nil {
		return nil, DumpThumbnailsOutput{}, fmt.Errorf("failed to dump thumbnails: %w", err)
	}

	return nil, DumpThumbnailsOutput{Dumped: dumped}, nil
}
