package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tubevault/tubevault/internal/media"
)

type VideoRepository struct {
	ctx *Context
}

func NewVideoRepository(dbCtx *Context) *VideoRepository {
	return &VideoRepository{ctx: dbCtx}
}

// FindAvailability returns the stored availability of a video, or nil when
// the video has never been archived.
func (r *VideoRepository) FindAvailability(ctx context.Context, videoID string) (*media.Availability, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("video repository: missing database context")
	}

	row, err := queries.FindVideoAvailability(ctx, videoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	availability := media.Availability(row.Availability)
	return &availability, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, videoID string) (*VideoRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("video repository: missing database context")
	}

	row, err := queries.FindVideoByID(ctx, videoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	record := videoRecordFromRow(row)
	return &record, nil
}

func (r *VideoRepository) ListThumbnails(ctx context.Context) ([]ThumbnailRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("video repository: missing database context")
	}

	rows, err := queries.ListThumbnails(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ThumbnailRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, ThumbnailRecord{
			VideoID:   row.VideoID,
			Thumbnail: row.Thumbnail,
			SourceURL: optionalString(row.ThumbnailURL),
		})
	}
	return result, nil
}

// Delete removes a video row. Dependent comments, tag links, and playlist
// memberships go with it through the cascading foreign keys.
func (r *VideoRepository) Delete(ctx context.Context, videoID string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("video repository: missing database context")
	}

	affected, err := queries.DeleteVideoByID(ctx, videoID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *VideoRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("video repository: missing database context")
	}

	return queries.CountVideos(ctx)
}
