package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

const (
	// YouTubeBase is the canonical watch/playlist URL prefix.
	YouTubeBase = "https://www.youtube.com/"
	// WaybackBase prefixes a URL to request the most recent Wayback capture.
	WaybackBase = "https://web.archive.org/web/2/"
)

// Extractor resolves video identifiers and playlists to raw metadata.
type Extractor interface {
	// Video fetches the full attribute bag for url. It returns a
	// *NotFoundError when the target is unresolvable and a
	// *TransientError for network-level failures.
	Video(ctx context.Context, url string) (*RawMetadata, error)
	// PlaylistFlat enumerates a playlist's member identifiers without
	// fetching per-video metadata.
	PlaylistFlat(ctx context.Context, id string) (*RawPlaylist, error)
}

// YtdlpExtractor shells out to a yt-dlp binary and parses its info JSON.
type YtdlpExtractor struct {
	// Path is the yt-dlp executable; defaults to "yt-dlp" on PATH.
	Path string
	// FetchComments asks the extractor to include the comment thread.
	FetchComments bool
}

// NewYtdlpExtractor builds an extractor around the given binary path.
func NewYtdlpExtractor(path string, fetchComments bool) *YtdlpExtractor {
	if path == "" {
		path = "yt-dlp"
	}
	return &YtdlpExtractor{Path: path, FetchComments: fetchComments}
}

// notFoundMarkers are the stderr fragments yt-dlp emits when the video is
// gone rather than the network being down.
var notFoundMarkers = []string{
	"Video unavailable",
	"Private video",
	"This video is not available",
	"has been removed",
	"account associated with this video has been terminated",
	"not available in your country",
	"404",
}

func (y *YtdlpExtractor) Video(ctx context.Context, url string) (*RawMetadata, error) {
	args := []string{"--dump-single-json", "--no-warnings", "--skip-download"}
	if y.FetchComments {
		args = append(args, "--write-comments")
	}
	args = append(args, url)

	out, stderr, err := y.run(ctx, args)
	if err != nil {
		return nil, classifyRunError(url, stderr, err)
	}

	var raw RawMetadata
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parse extractor output for %s: %w", url, err)
	}
	return &raw, nil
}

func (y *YtdlpExtractor) PlaylistFlat(ctx context.Context, id string) (*RawPlaylist, error) {
	url := YouTubeBase + "playlist?list=" + id
	args := []string{"--dump-single-json", "--no-warnings", "--skip-download", "--flat-playlist", url}

	out, stderr, err := y.run(ctx, args)
	if err != nil {
		return nil, classifyRunError(id, stderr, err)
	}

	var raw RawPlaylist
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parse playlist output for %s: %w", id, err)
	}
	return &raw, nil
}

func (y *YtdlpExtractor) run(ctx context.Context, args []string) (stdout, stderr []byte, err error) {
	path := y.Path
	if path == "" {
		path = "yt-dlp"
	}

	var outBuf, errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errBuf.Bytes(), err
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

func classifyRunError(target string, stderr []byte, err error) error {
	msg := string(stderr)
	for _, marker := range notFoundMarkers {
		if strings.Contains(msg, marker) {
			return &NotFoundError{ID: target, Reason: firstErrorLine(msg)}
		}
	}
	return &TransientError{ID: target, Err: fmt.Errorf("%w: %s", err, firstErrorLine(msg))}
}

func firstErrorLine(stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ERROR") {
			return line
		}
	}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		lines := strings.SplitN(trimmed, "\n", 2)
		return lines[0]
	}
	return "extractor exited with failure"
}
