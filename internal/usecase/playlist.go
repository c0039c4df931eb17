package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tubevault/tubevault/internal/media"
	"github.com/tubevault/tubevault/internal/progress"
)

// BatchReport summarizes one playlist or history run. Failed counts videos
// whose archival errored, Skipped counts duplicate link or watch rows.
type BatchReport struct {
	Total    int
	Archived int
	Failed   int
	Skipped  int
}

// ResolvePlaylist enumerates a playlist through the extractor's flat mode.
// Flat enumeration carries no per-video added timestamps.
func (a *Archiver) ResolvePlaylist(ctx context.Context, id string) (media.Playlist, error) {
	if err := media.ValidatePlaylistID(id); err != nil {
		return media.Playlist{}, err
	}

	raw, err := a.lister.PlaylistFlat(ctx, id)
	if err != nil {
		return media.Playlist{}, fmt.Errorf("failed to enumerate playlist %s: %w", id, err)
	}

	playlist := media.Playlist{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Visibility:  raw.Availability,
		UpdatedAt:   parseCompactDate(raw.ModifiedDate),
	}
	if raw.ChannelID != "" {
		channel := raw.ChannelID
		playlist.ChannelID = &channel
	}
	for _, entry := range raw.Entries {
		playlist.Entries = append(playlist.Entries, media.PlaylistEntry{VideoID: entry.ID})
	}
	return playlist, nil
}

// PlaylistExists reports whether a snapshot of the playlist is stored, for
// the overwrite confirmation at the command boundary.
func (a *Archiver) PlaylistExists(ctx context.Context, id string) (bool, error) {
	return a.playlists.Exists(ctx, id)
}

// ArchivePlaylist replaces any stored snapshot of the playlist and archives
// every member. Per-video failures are logged and skipped so one broken
// video never aborts the batch.
func (a *Archiver) ArchivePlaylist(ctx context.Context, playlist media.Playlist) (BatchReport, error) {
	if err := a.playlist.BeginSnapshot(ctx, playlist); err != nil {
		return BatchReport{}, err
	}

	report := BatchReport{Total: len(playlist.Entries)}
	reporter := progress.NewReporter(a.progressOut, a.logger, int64(report.Total), "archiving playlist")
	defer reporter.Done()

	for _, entry := range playlist.Entries {
		reporter.Step(entry.VideoID)

		if _, err := a.ArchiveVideo(ctx, entry.VideoID); err != nil {
			a.logger.Error("failed to archive playlist member",
				"playlist", playlist.ID, "video", entry.VideoID, "error", err)
			report.Failed++
			continue
		}

		linked, err := a.playlist.Link(ctx, playlist.ID, entry)
		if err != nil {
			a.logger.Error("failed to link playlist member",
				"playlist", playlist.ID, "video", entry.VideoID, "error", err)
			report.Failed++
			continue
		}
		if !linked {
			a.logger.Info("duplicate playlist membership skipped",
				"playlist", playlist.ID, "video", entry.VideoID)
			report.Skipped++
			continue
		}
		report.Archived++
	}

	a.logger.Info("playlist archived",
		"playlist", playlist.ID, "title", playlist.Title,
		"archived", report.Archived, "failed", report.Failed, "skipped", report.Skipped)
	return report, nil
}

// parseCompactDate converts the extractor's yyyymmdd date to epoch seconds.
func parseCompactDate(value string) *int64 {
	if value == "" {
		return nil
	}
	t, err := time.Parse("20060102", value)
	if err != nil {
		return nil
	}
	epoch := t.Unix()
	return &epoch
}
