// Package youtube adapts external metadata extraction (yt-dlp) and the
// historical Wayback mirror into typed results for the archival pipeline.
package youtube

// RawMetadata is the attribute bag produced by the extractor for a single
// video, before normalization. Field names follow the yt-dlp info JSON;
// optionals are pointers so absent keys stay distinguishable from zero
// values.
type RawMetadata struct {
	ID             string       `json:"id"`
	FullTitle      string       `json:"fulltitle"`
	Title          string       `json:"title"`
	Description    *string      `json:"description"`
	ChannelID      string       `json:"channel_id"`
	ChannelName    *string      `json:"channel"`
	ChannelURL     string       `json:"channel_url"`
	Followers      *int64       `json:"channel_follower_count"`
	UploaderID     string       `json:"uploader_id"`
	UploaderName   *string      `json:"uploader"`
	ThumbnailURL   string       `json:"thumbnail"`
	Duration       *int64       `json:"duration"`
	ViewCount      *int64       `json:"view_count"`
	LikeCount      *int64       `json:"like_count"`
	AgeLimit       *int64       `json:"age_limit"`
	LiveStatus     *string      `json:"live_status"`
	UploadDate     string       `json:"upload_date"`
	Categories     []string     `json:"categories"`
	Tags           []string     `json:"tags"`
	Comments       []RawComment `json:"comments"`
	Width          *int64       `json:"width"`
	Height         *int64       `json:"height"`
	FPS            *float64     `json:"fps"`
	AudioChannels  *int64       `json:"audio_channels"`
	Filesize       *int64       `json:"filesize"`
	FilesizeApprox *int64       `json:"filesize_approx"`
	Availability   string       `json:"availability"`
}

// RawComment mirrors a yt-dlp comment object. Parent holds the upstream
// "root" sentinel for top-level comments; normalization maps it to nil.
type RawComment struct {
	ID               string `json:"id"`
	AuthorID         string `json:"author_id"`
	Author           string `json:"author"`
	Text             string `json:"text"`
	LikeCount        *int64 `json:"like_count"`
	IsFavorited      bool   `json:"is_favorited"`
	AuthorIsUploader bool   `json:"author_is_uploader"`
	Parent           string `json:"parent"`
	Timestamp        *int64 `json:"timestamp"`
}

// RawPlaylist is the result of flat playlist enumeration: playlist-level
// metadata plus member identifiers, without per-video detail.
type RawPlaylist struct {
	ID           string `json:"id"`
	ChannelID    string `json:"channel_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ModifiedDate string `json:"modified_date"`
	Availability string `json:"availability"`
	Entries      []struct {
		ID string `json:"id"`
	} `json:"entries"`
}
