package usecase

import (
	"context"
	"fmt"

	"github.com/tubevault/tubevault/internal/media"
)

// UnarchiveVideo removes a video and everything hanging off it: comments,
// tag links, playlist memberships, and watch history.
func (a *Archiver) UnarchiveVideo(ctx context.Context, id string) (bool, error) {
	if err := media.ValidateVideoID(id); err != nil {
		return false, err
	}

	deleted, err := a.videos.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to unarchive video %s: %w", id, err)
	}
	if deleted {
		a.logger.Info("video unarchived", "video", id)
	}
	return deleted, nil
}

// UnarchivePlaylist removes a playlist snapshot. The id "*" removes every
// stored playlist. Archived videos stay put either way.
func (a *Archiver) UnarchivePlaylist(ctx context.Context, id string) (int64, error) {
	if id == "*" {
		removed, err := a.playlists.DeleteAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to unarchive playlists: %w", err)
		}
		a.logger.Info("all playlists unarchived", "removed", removed)
		return removed, nil
	}

	if err := media.ValidatePlaylistID(id); err != nil {
		return 0, err
	}
	deleted, err := a.playlists.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to unarchive playlist %s: %w", id, err)
	}
	if !deleted {
		return 0, nil
	}
	a.logger.Info("playlist unarchived", "playlist", id)
	return 1, nil
}
