// Package enrich augments extracted metadata with third-party rating
// figures and the thumbnail binary. Every operation here is best-effort:
// failures are logged and degrade to absent fields, never to errors.
package enrich

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultRatingsBaseURL is the Return YouTube Dislike API endpoint.
	DefaultRatingsBaseURL = "https://returnyoutubedislikeapi.com/"

	ratingsTimeout   = 800 * time.Millisecond
	thumbnailTimeout = 10 * time.Second
)

// Enrichment carries the fields merged into the raw bag before
// normalization. Nil pointers mean the service had nothing for us.
type Enrichment struct {
	Thumbnail []byte
	Likes     *int64
	Dislikes  *int64
	Views     *int64
	Rating    *float64
}

// Client calls the rating service and fetches thumbnail binaries.
type Client struct {
	ratingsBaseURL     string
	downloadThumbnails bool
	httpClient         *http.Client
	logger             *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. Tests point this at
// httptest servers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRatingsBaseURL overrides the rating service endpoint.
func WithRatingsBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.ratingsBaseURL = base
		}
	}
}

// NewClient builds an enrichment client. When downloadThumbnails is false
// the thumbnail binary is always left nil.
func NewClient(downloadThumbnails bool, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		ratingsBaseURL:     DefaultRatingsBaseURL,
		downloadThumbnails: downloadThumbnails,
		httpClient:         &http.Client{},
		logger:             logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ratingsResponse mirrors the rating service payload. The echoed ID
// doubles as the miss marker: an empty ID means the service had no data.
type ratingsResponse struct {
	ID       string   `json:"id"`
	Likes    *int64   `json:"likes"`
	Dislikes *int64   `json:"dislikes"`
	Views    *int64   `json:"viewCount"`
	Rating   *float64 `json:"rating"`
}

// Enrich gathers ratings and the thumbnail binary for videoID. It never
// fails; whatever could not be fetched stays nil.
func (c *Client) Enrich(ctx context.Context, videoID, thumbnailURL string) Enrichment {
	var enr Enrichment

	if ratings, ok := c.fetchRatings(ctx, videoID); ok {
		enr.Likes = ratings.Likes
		enr.Dislikes = ratings.Dislikes
		enr.Views = ratings.Views
		enr.Rating = ratings.Rating
	}

	if c.downloadThumbnails && thumbnailURL != "" {
		enr.Thumbnail = c.fetchThumbnail(ctx, videoID, thumbnailURL)
	}

	return enr
}

func (c *Client) fetchRatings(ctx context.Context, videoID string) (ratingsResponse, bool) {
	var parsed ratingsResponse

	ctx, cancel := context.WithTimeout(ctx, ratingsTimeout)
	defer cancel()

	url := c.ratingsBaseURL + "Votes?videoId=" + videoID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("building ratings request failed", "video", videoID, "error", err)
		return parsed, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ratings request failed", "video", videoID, "error", err)
		return parsed, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ratings request rejected", "video", videoID, "status", resp.StatusCode)
		return parsed, false
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("malformed ratings response", "video", videoID, "error", err)
		return parsed, false
	}
	if parsed.ID == "" {
		c.logger.Warn("rating service has no data for video", "video", videoID)
		return parsed, false
	}
	return parsed, true
}

func (c *Client) fetchThumbnail(ctx context.Context, videoID, thumbnailURL string) []byte {
	// Query parameters on thumbnail URLs select resized variants; strip
	// them to get the original.
	if i := strings.IndexByte(thumbnailURL, '?'); i >= 0 {
		thumbnailURL = thumbnailURL[:i]
	}

	ctx, cancel := context.WithTimeout(ctx, thumbnailTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnailURL, nil)
	if err != nil {
		c.logger.Warn("building thumbnail request failed", "video", videoID, "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("thumbnail download failed", "video", videoID, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("thumbnail download rejected", "video", videoID, "status", resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("thumbnail read failed", "video", videoID, "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return data
}
