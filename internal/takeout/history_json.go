package takeout

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tubevault/tubevault/internal/media"
)

// HistoryExport is a parsed watch-history file. Unavailable counts entries
// whose video could not be identified, typically deleted or private videos
// that the export lists by title only.
type HistoryExport struct {
	Entries     []media.HistoryEntry
	Unavailable int
}

type historyItem struct {
	TitleURL string `json:"titleUrl"`
	Time     string `json:"time"`
}

// ParseHistoryJSON reads an exported watch-history file. Entries without a
// resolvable video id or watch time are counted, not fatal.
func ParseHistoryJSON(r io.Reader) (HistoryExport, error) {
	var items []historyItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return HistoryExport{}, fmt.Errorf("failed to read history export: %w", err)
	}

	export := HistoryExport{Entries: make([]media.HistoryEntry, 0, len(items))}
	for _, item := range items {
		id := videoIDFromURL(item.TitleURL)
		watched := parseTimestamp(item.Time)
		if id == "" || watched == nil {
			export.Unavailable++
			continue
		}
		export.Entries = append(export.Entries, media.HistoryEntry{
			VideoID:   id,
			WatchedAt: *watched,
		})
	}
	return export, nil
}

// videoIDFromURL pulls the id out of a watch URL. Export URLs carry the id
// as the only query parameter, so everything after the separator is the id.
func videoIDFromURL(url string) string {
	_, id, found := strings.Cut(url, "=")
	if !found {
		return ""
	}
	return id
}
