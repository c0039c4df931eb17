package database

import (
	"context"
	"database/sql"
	"fmt"
)

type PlaylistRepository struct {
	ctx *Context
}

func NewPlaylistRepository(dbCtx *Context) *PlaylistRepository {
	return &PlaylistRepository{ctx: dbCtx}
}

// FindTitle reports whether a playlist snapshot exists and, if so, its
// stored title. Playlists without a title return an empty string.
func (r *PlaylistRepository) FindTitle(ctx context.Context, playlistID string) (string, bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return "", false, fmt.Errorf("playlist repository: missing database context")
	}

	title, err := queries.FindPlaylistTitle(ctx, playlistID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return optionalString(title), true, nil
}

func (r *PlaylistRepository) Exists(ctx context.Context, playlistID string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("playlist repository: missing database context")
	}

	return queries.PlaylistExists(ctx, playlistID)
}

func (r *PlaylistRepository) Delete(ctx context.Context, playlistID string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("playlist repository: missing database context")
	}

	affected, err := queries.DeletePlaylistByID(ctx, playlistID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PlaylistRepository) DeleteAll(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("playlist repository: missing database context")
	}

	return queries.DeleteAllPlaylists(ctx)
}

// Members returns the video ids linked to a playlist in insertion order.
func (r *PlaylistRepository) Members(ctx context.Context, playlistID string) ([]string, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("playlist repository: missing database context")
	}

	return queries.ListPlaylistMembers(ctx, playlistID)
}
