// Package services implements the storage-side operations of the archive:
// transactional video writes, playlist snapshots, and watch history.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tubevault/tubevault/internal/database"
	sqldb "github.com/tubevault/tubevault/internal/database/sqlc"
	"github.com/tubevault/tubevault/internal/media"
)

// ArchiveService persists canonical video records. All writes for one video
// happen in a single transaction so a failure leaves no partial state.
type ArchiveService struct {
	ctx *database.Context
}

func NewArchiveService(dbCtx *database.Context) *ArchiveService {
	return &ArchiveService{ctx: dbCtx}
}

// Archive stores a canonical video record. A video that is already archived
// and not lost is left untouched. A lost placeholder row is healed into a
// full record and reported as recovered.
func (s *ArchiveService) Archive(ctx context.Context, video media.Video) (media.ArchiveStatus, error) {
	if s.ctx == nil {
		return "", fmt.Errorf("archive service: missing database context")
	}

	status := media.StatusCreated
	err := s.ctx.WithTx(ctx, func(ctx context.Context, q *sqldb.Queries) error {
		healingLost := false
		existing, err := q.FindVideoAvailability(ctx, video.ID)
		switch {
		case err == nil:
			if media.Availability(existing.Availability) != media.Lost {
				status = media.StatusAlreadyArchived
				return nil
			}
			healingLost = true
		case errors.Is(err, sql.ErrNoRows):
		default:
			return err
		}

		// The availability column keeps the resolver's verdict; the
		// returned status still reports a healed placeholder as a
		// recovery.
		params := database.VideoInsertParams(video)
		if healingLost || video.Availability == media.Recovered {
			status = media.StatusRecovered
		}

		// Referenced rows first, in dependency order.
		if video.Category != nil {
			if err := q.InsertCategory(ctx, *video.Category); err != nil {
				return fmt.Errorf("failed to store category: %w", err)
			}
		}
		if err := insertChannel(ctx, q, video); err != nil {
			return err
		}

		if healingLost {
			if err := q.UpdateVideo(ctx, params); err != nil {
				return fmt.Errorf("failed to heal lost video %s: %w", video.ID, err)
			}
		} else if err := q.InsertVideo(ctx, params); err != nil {
			// A row appearing between the availability probe and the
			// insert means another write of the same video won.
			if database.IsUniqueViolation(err) {
				status = media.StatusAlreadyArchived
				return nil
			}
			return fmt.Errorf("failed to store video %s: %w", video.ID, err)
		}

		if err := replaceComments(ctx, q, video); err != nil {
			return err
		}

		for _, tag := range video.Tags {
			if err := q.InsertTag(ctx, tag); err != nil {
				return fmt.Errorf("failed to store tag %q: %w", tag, err)
			}
			if err := q.InsertVideoTag(ctx, sqldb.InsertVideoTagParams{Video: video.ID, Tag: tag}); err != nil {
				return fmt.Errorf("failed to link tag %q: %w", tag, err)
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

// MarkLost records a placeholder row for a video that could not be resolved
// anywhere. An existing full record is never downgraded.
func (s *ArchiveService) MarkLost(ctx context.Context, videoID string) (media.ArchiveStatus, error) {
	if s.ctx == nil {
		return "", fmt.Errorf("archive service: missing database context")
	}

	err := s.ctx.WithTx(ctx, func(ctx context.Context, q *sqldb.Queries) error {
		return q.InsertLostVideo(ctx, videoID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to mark video %s as lost: %w", videoID, err)
	}
	return media.StatusLost, nil
}

func insertChannel(ctx context.Context, q *sqldb.Queries, video media.Video) error {
	if video.UploaderID != "" {
		err := q.InsertUser(ctx, sqldb.InsertUserParams{
			UserID: video.UploaderID,
			Name:   nullStringValue(video.UploaderName),
		})
		if err != nil {
			return fmt.Errorf("failed to store uploader %s: %w", video.UploaderID, err)
		}
	}

	if video.ChannelID == "" {
		return nil
	}
	err := q.InsertChannel(ctx, sqldb.InsertChannelParams{
		ChannelID:     video.ChannelID,
		UserID:        nullStringValue(video.UploaderID),
		Name:          nullStringValue(video.ChannelName),
		FollowerCount: nullInt64Ptr(video.Followers),
		ChannelURL:    nullStringValue(video.ChannelURL),
	})
	if err != nil {
		return fmt.Errorf("failed to store channel %s: %w", video.ChannelID, err)
	}
	return nil
}

// replaceComments drops the stored comment set and writes the fresh one, so
// a re-archive never mixes threads from two snapshots.
func replaceComments(ctx context.Context, q *sqldb.Queries, video media.Video) error {
	if _, err := q.DeleteCommentsByVideo(ctx, video.ID); err != nil {
		return fmt.Errorf("failed to clear comments for %s: %w", video.ID, err)
	}

	for _, comment := range video.Comments {
		if comment.AuthorID != "" {
			err := q.InsertUser(ctx, sqldb.InsertUserParams{
				UserID: comment.AuthorID,
				Name:   nullStringValue(comment.AuthorName),
			})
			if err != nil {
				return fmt.Errorf("failed to store comment author %s: %w", comment.AuthorID, err)
			}
		}
		if err := q.InsertComment(ctx, database.CommentInsertParams(video.ID, comment)); err != nil {
			return fmt.Errorf("failed to store comment %s: %w", comment.ID, err)
		}
	}
	return nil
}
