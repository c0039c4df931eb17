package database

import "github.com/tubevault/tubevault/internal/media"

// VideoRecord is the read-side projection of a videos row.
type VideoRecord struct {
	ID           string
	Title        string
	Description  string
	ChannelID    *string
	ThumbnailURL string
	Duration     *int64
	Views        *int64
	AgeLimit     *int64
	LiveStatus   *string
	Likes        *int64
	Dislikes     *int64
	Rating       *float64
	UploadedAt   *int64
	Availability media.Availability
	Width        *int64
	Height       *int64
	FPS          *float64
	AudioChans   *int64
	Category     *string
	Filesize     *int64
}

// ThumbnailRecord is one stored thumbnail blob plus its source URL.
type ThumbnailRecord struct {
	VideoID   string
	Thumbnail []byte
	SourceURL string
}
