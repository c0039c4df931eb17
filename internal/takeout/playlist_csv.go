// Package takeout parses Google Takeout exports: playlist CSV files and
// the watch-history JSON file.
package takeout

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tubevault/tubevault/internal/media"
)

// A playlist export starts with a metadata header row and one row of
// values, followed by a second header row introducing the membership rows.
// Blank lines between the blocks are dropped by the CSV reader.
const membershipHeaderField = "Video ID"

// ParsePlaylistCSV reads one exported playlist, returning its metadata and
// membership entries with their per-video added timestamps.
func ParsePlaylistCSV(r io.Reader) (media.Playlist, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return media.Playlist{}, fmt.Errorf("failed to read playlist export: %w", err)
	}
	if len(records) < 2 {
		return media.Playlist{}, fmt.Errorf("playlist export has no metadata rows")
	}

	meta := make(map[string]string, len(records[0]))
	for i, name := range records[0] {
		if i < len(records[1]) {
			meta[strings.TrimSpace(name)] = strings.TrimSpace(records[1][i])
		}
	}

	playlist := media.Playlist{
		ID:          meta["Playlist ID"],
		Title:       meta["Title"],
		Description: meta["Description"],
		Visibility:  meta["Visibility"],
		ChannelID:   optional(meta["Channel ID"]),
		CreatedAt:   parseTimestamp(meta["Time Created"]),
		UpdatedAt:   parseTimestamp(meta["Time Updated"]),
	}
	if playlist.ID == "" {
		return media.Playlist{}, fmt.Errorf("playlist export is missing a playlist id")
	}

	for _, record := range membershipRows(records[2:]) {
		// Exported ids are sometimes padded with stray spaces.
		id := strings.ReplaceAll(record[0], " ", "")
		if id == "" {
			continue
		}
		entry := media.PlaylistEntry{VideoID: id}
		if len(record) > 1 {
			entry.AddedAt = parseTimestamp(strings.TrimSpace(record[1]))
		}
		playlist.Entries = append(playlist.Entries, entry)
	}

	return playlist, nil
}

func membershipRows(records [][]string) [][]string {
	for i, record := range records {
		if len(record) > 0 && strings.TrimSpace(record[0]) == membershipHeaderField {
			return records[i+1:]
		}
	}
	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseTimestamp converts an exported ISO 8601 time to epoch seconds,
// returning nil for absent or malformed values.
func parseTimestamp(value string) *int64 {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-0700", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			epoch := t.Unix()
			return &epoch
		}
	}
	return nil
}
