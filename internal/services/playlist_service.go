package services

import (
	"context"
	"fmt"

	"github.com/tubevault/tubevault/internal/database"
	sqldb "github.com/tubevault/tubevault/internal/database/sqlc"
	"github.com/tubevault/tubevault/internal/media"
)

// PlaylistService manages playlist snapshots. A snapshot fully replaces any
// previous version of the same playlist.
type PlaylistService struct {
	ctx *database.Context
}

func NewPlaylistService(dbCtx *database.Context) *PlaylistService {
	return &PlaylistService{ctx: dbCtx}
}

// BeginSnapshot drops any stored version of the playlist and writes a fresh
// metadata row. Memberships are linked afterwards, one per archived video,
// so a partially archived playlist still holds every video that succeeded.
func (s *PlaylistService) BeginSnapshot(ctx context.Context, playlist media.Playlist) error {
	if s.ctx == nil {
		return fmt.Errorf("playlist service: missing database context")
	}

	return s.ctx.WithTx(ctx, func(ctx context.Context, q *sqldb.Queries) error {
		if _, err := q.DeletePlaylistByID(ctx, playlist.ID); err != nil {
			return fmt.Errorf("failed to drop old playlist %s: %w", playlist.ID, err)
		}
		if playlist.ChannelID != nil {
			err := q.InsertChannel(ctx, sqldb.InsertChannelParams{ChannelID: *playlist.ChannelID})
			if err != nil {
				return fmt.Errorf("failed to store playlist channel: %w", err)
			}
		}
		if err := q.InsertPlaylist(ctx, database.PlaylistInsertParams(playlist)); err != nil {
			return fmt.Errorf("failed to store playlist %s: %w", playlist.ID, err)
		}
		return nil
	})
}

// Link records one video's membership in a playlist. It reports false when
// the membership already exists in the current snapshot.
func (s *PlaylistService) Link(ctx context.Context, playlistID string, entry media.PlaylistEntry) (bool, error) {
	if s.ctx == nil {
		return false, fmt.Errorf("playlist service: missing database context")
	}

	err := s.ctx.Queries.InsertPlaylistVideo(ctx, sqldb.InsertPlaylistVideoParams{
		Playlist: playlistID,
		Video:    entry.VideoID,
		Added:    nullInt64Ptr(entry.AddedAt),
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to link video %s to playlist %s: %w", entry.VideoID, playlistID, err)
	}
	return true, nil
}
