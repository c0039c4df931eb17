// Package normalize turns a raw extractor attribute bag plus enrichment
// results into the canonical storage-ready record. It performs no network
// or storage access.
package normalize

import (
	"time"

	"github.com/tubevault/tubevault/internal/enrich"
	"github.com/tubevault/tubevault/internal/media"
	"github.com/tubevault/tubevault/internal/youtube"
)

// DefaultDescription is the boilerplate YouTube stamps onto videos without
// a real description; it is normalized to the empty string.
const DefaultDescription = "Enjoy the videos and music you love, upload original content, and share it all with friends, family, and the world on YouTube."

// rootParent is the upstream sentinel marking a top-level comment.
const rootParent = "root"

// Canonical builds the canonical record from the raw bag and the
// enrichment results. It is deterministic: the same inputs always produce
// the same record.
func Canonical(raw *youtube.RawMetadata, enr enrich.Enrichment) media.Video {
	v := media.Video{
		ID:           raw.ID,
		Title:        title(raw),
		Description:  description(raw.Description),
		ChannelID:    raw.ChannelID,
		UploaderID:   raw.UploaderID,
		UploaderName: displayName(raw.UploaderName, raw.ChannelName, raw.UploaderID),
		ChannelName:  displayName(raw.ChannelName, raw.UploaderName, raw.UploaderID),
		Followers:    raw.Followers,
		ChannelURL:   raw.ChannelURL,
		Thumbnail:    enr.Thumbnail,
		ThumbnailURL: raw.ThumbnailURL,
		Duration:     raw.Duration,
		Views:        coalesceInt(enr.Views, raw.ViewCount),
		AgeLimit:     raw.AgeLimit,
		LiveStatus:   raw.LiveStatus,
		Likes:        coalesceInt(enr.Likes, raw.LikeCount),
		Dislikes:     enr.Dislikes,
		Rating:       enr.Rating,
		UploadedAt:   uploadTimestamp(raw.UploadDate),
		Availability: availability(raw.Availability),
		Width:        raw.Width,
		Height:       raw.Height,
		FPS:          raw.FPS,
		AudioChans:   raw.AudioChannels,
		Category:     firstCategory(raw.Categories),
		Filesize:     coalesceInt(raw.Filesize, raw.FilesizeApprox),
		Comments:     comments(raw.Comments),
		Tags:         append([]string(nil), raw.Tags...),
	}
	return v
}

func title(raw *youtube.RawMetadata) string {
	if raw.FullTitle != "" {
		return raw.FullTitle
	}
	return raw.Title
}

func description(desc *string) string {
	if desc == nil || *desc == DefaultDescription {
		return ""
	}
	return *desc
}

// displayName picks the first usable name, falling back to the uploader
// identifier as a last resort.
func displayName(first, second *string, fallback string) string {
	if first != nil && *first != "" {
		return *first
	}
	if second != nil && *second != "" {
		return *second
	}
	return fallback
}

func coalesceInt(preferred, fallback *int64) *int64 {
	if preferred != nil {
		return preferred
	}
	return fallback
}

// uploadTimestamp parses the extractor's yyyymmdd upload date into epoch
// seconds; RFC 3339 inputs from export files are accepted too.
func uploadTimestamp(date string) *int64 {
	if date == "" {
		return nil
	}
	if t, err := time.Parse("20060102", date); err == nil {
		ts := t.Unix()
		return &ts
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		ts := t.Unix()
		return &ts
	}
	return nil
}

func availability(raw string) media.Availability {
	if raw == string(media.Recovered) {
		return media.Recovered
	}
	return media.Available
}

func firstCategory(categories []string) *string {
	if len(categories) == 0 {
		return nil
	}
	c := categories[0]
	return &c
}

func comments(raw []youtube.RawComment) []media.Comment {
	if len(raw) == 0 {
		return nil
	}
	out := make([]media.Comment, 0, len(raw))
	for _, rc := range raw {
		var parent *string
		if rc.Parent != "" && rc.Parent != rootParent {
			p := rc.Parent
			parent = &p
		}
		out = append(out, media.Comment{
			ID:           rc.ID,
			AuthorID:     rc.AuthorID,
			AuthorName:   rc.Author,
			Text:         rc.Text,
			LikeCount:    rc.LikeCount,
			Favorited:    rc.IsFavorited,
			FromUploader: rc.AuthorIsUploader,
			ParentID:     parent,
			Timestamp:    rc.Timestamp,
		})
	}
	return out
}
