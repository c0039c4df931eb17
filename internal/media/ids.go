package media

import (
	"fmt"
	"regexp"
)

var (
	videoIDPattern    = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	playlistIDPattern = regexp.MustCompile(`^PL[0-9A-Za-z_-]{32}$`)
)

// ValidateVideoID checks the fixed-length external video identifier shape.
func ValidateVideoID(id string) error {
	if id == "" {
		return fmt.Errorf("missing video id")
	}
	if !videoIDPattern.MatchString(id) {
		return fmt.Errorf("invalid video id %q: expected 11 characters of [0-9A-Za-z_-]", id)
	}
	return nil
}

// ValidatePlaylistID checks the fixed-length external playlist identifier shape.
func ValidatePlaylistID(id string) error {
	if id == "" {
		return fmt.Errorf("missing playlist id")
	}
	if !playlistIDPattern.MatchString(id) {
		return fmt.Errorf("invalid playlist id %q: expected PL followed by 32 characters of [0-9A-Za-z_-]", id)
	}
	return nil
}

// IsVideoID reports whether id has the video identifier shape.
func IsVideoID(id string) bool { return videoIDPattern.MatchString(id) }

// IsPlaylistID reports whether id has the playlist identifier shape.
func IsPlaylistID(id string) bool { return playlistIDPattern.MatchString(id) }
