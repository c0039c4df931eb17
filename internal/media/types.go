// Package media provides the canonical data types for archived videos and
// the operations performed on them.
package media

// Availability is the lifecycle state of an archived video row.
type Availability string

const (
	// Available is the healthy default: metadata resolved via the primary
	// extractor.
	Available Availability = "available"
	// Lost marks a video that could not be resolved anywhere. A lost row
	// carries only its identifier and this state.
	Lost Availability = "lost"
	// Recovered marks a video whose metadata was resolved through the
	// historical mirror after the primary extractor reported it gone.
	Recovered Availability = "recovered"
)

// ArchiveStatus is the outcome of a single archival attempt.
type ArchiveStatus string

const (
	StatusCreated         ArchiveStatus = "created"
	StatusRecovered       ArchiveStatus = "recovered"
	StatusAlreadyArchived ArchiveStatus = "already-archived"
	StatusLost            ArchiveStatus = "lost"
)

// Video is the canonical, storage-ready representation of a video's
// metadata. Optional fields are pointers so "unknown" survives the trip
// into the store as NULL.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	UploaderID   string
	UploaderName string
	ChannelName  string
	Followers    *int64
	ChannelURL   string
	Thumbnail    []byte
	ThumbnailURL string
	Duration     *int64
	Views        *int64
	AgeLimit     *int64
	LiveStatus   *string
	Likes        *int64
	Dislikes     *int64
	Rating       *float64
	UploadedAt   *int64
	Availability Availability
	Width        *int64
	Height       *int64
	FPS          *float64
	AudioChans   *int64
	Category     *string
	Filesize     *int64
	Comments     []Comment
	Tags         []string
}

// Comment is a single archived comment. ParentID is nil for top-level
// comments; the upstream "root" sentinel is normalized away before this
// struct is built.
type Comment struct {
	ID           string
	AuthorID     string
	AuthorName   string
	Text         string
	LikeCount    *int64
	Favorited    bool
	FromUploader bool
	ParentID     *string
	Timestamp    *int64
}

// Playlist is a playlist snapshot. Re-ingestion replaces the previous
// snapshot wholesale.
type Playlist struct {
	ID          string
	ChannelID   *string
	CreatedAt   *int64
	UpdatedAt   *int64
	Title       string
	Description string
	Visibility  string
	Entries     []PlaylistEntry
}

// PlaylistEntry is one playlist membership row. AddedAt is only known for
// takeout exports; flat enumeration yields nil.
type PlaylistEntry struct {
	VideoID string
	AddedAt *int64
}

// HistoryEntry is one watch-history record, deduplicated by the
// (video, watched) pair.
type HistoryEntry struct {
	VideoID   string
	WatchedAt int64
}
