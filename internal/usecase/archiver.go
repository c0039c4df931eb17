// Package usecase wires the fetch, enrichment, normalization, and storage
// stages into the operations exposed by the CLI and the MCP server.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tubevault/tubevault/internal/database"
	"github.com/tubevault/tubevault/internal/enrich"
	"github.com/tubevault/tubevault/internal/media"
	"github.com/tubevault/tubevault/internal/normalize"
	"github.com/tubevault/tubevault/internal/services"
	"github.com/tubevault/tubevault/internal/youtube"
)

// Resolver fetches raw metadata, falling back to the historical mirror.
type Resolver interface {
	Fetch(ctx context.Context, id string) (youtube.FetchResult, error)
}

// PlaylistLister enumerates playlist members without per-video detail.
type PlaylistLister interface {
	PlaylistFlat(ctx context.Context, id string) (*youtube.RawPlaylist, error)
}

// Enricher augments raw metadata with ratings and the thumbnail binary.
type Enricher interface {
	Enrich(ctx context.Context, videoID, thumbnailURL string) enrich.Enrichment
}

// Archiver runs the end-to-end pipeline for single videos and batches.
type Archiver struct {
	resolver Resolver
	lister   PlaylistLister
	enricher Enricher

	videos    *database.VideoRepository
	playlists *database.PlaylistRepository
	archive   *services.ArchiveService
	playlist  *services.PlaylistService
	history   *services.HistoryService

	logger      *slog.Logger
	progressOut io.Writer
}

func NewArchiver(dbCtx *database.Context, resolver Resolver, lister PlaylistLister, enricher Enricher, logger *slog.Logger, progressOut io.Writer) *Archiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archiver{
		resolver:    resolver,
		lister:      lister,
		enricher:    enricher,
		videos:      database.NewVideoRepository(dbCtx),
		playlists:   database.NewPlaylistRepository(dbCtx),
		archive:     services.NewArchiveService(dbCtx),
		playlist:    services.NewPlaylistService(dbCtx),
		history:     services.NewHistoryService(dbCtx),
		logger:      logger,
		progressOut: progressOut,
	}
}

// ArchiveVideo runs the full pipeline for one video id.
func (a *Archiver) ArchiveVideo(ctx context.Context, id string) (media.ArchiveStatus, error) {
	if err := media.ValidateVideoID(id); err != nil {
		return "", err
	}

	// Cheap probe before any network I/O. The store re-checks inside its
	// transaction, this just saves the extractor round trip.
	availability, err := a.videos.FindAvailability(ctx, id)
	if err != nil {
		return "", err
	}
	if availability != nil && *availability != media.Lost {
		a.logger.Info("video already archived", "video", id)
		return media.StatusAlreadyArchived, nil
	}

	result, err := a.resolver.Fetch(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to fetch video %s: %w", id, err)
	}
	if result.Unresolvable {
		a.logger.Warn("video is gone everywhere, archiving as lost", "video", id)
		return a.archive.MarkLost(ctx, id)
	}

	enrichment := a.enricher.Enrich(ctx, id, result.Raw.ThumbnailURL)
	video := normalize.Canonical(result.Raw, enrichment)

	status, err := a.archive.Archive(ctx, video)
	if err != nil {
		return "", err
	}
	a.logger.Info("video archived", "video", id, "status", string(status))
	return status, nil
}
