package youtube

import (
	"context"
	"log/slog"
	"time"
)

const (
	fallbackAttempts = 3
	fallbackDelay    = 2 * time.Second
)

// FetchResult is the outcome of a resolve attempt.
//
// Exactly one of the following holds: Raw is set (Recovered tells whether
// the mirror supplied it), or Unresolvable is true, meaning the video is
// gone everywhere and should be archived as lost.
type FetchResult struct {
	Raw          *RawMetadata
	Recovered    bool
	Unresolvable bool
}

// Resolver drives the primary-then-mirror fetch sequence.
type Resolver struct {
	extractor Extractor
	logger    *slog.Logger

	attempts int
	delay    time.Duration
	sleep    func(time.Duration)
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithSleeper overrides how retry delays are performed. Tests use this to
// avoid real sleeps.
func WithSleeper(sleep func(time.Duration)) ResolverOption {
	return func(r *Resolver) {
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// WithFallbackPolicy overrides the attempt count and fixed delay of the
// mirror fallback.
func WithFallbackPolicy(attempts int, delay time.Duration) ResolverOption {
	return func(r *Resolver) {
		if attempts > 0 {
			r.attempts = attempts
		}
		if delay >= 0 {
			r.delay = delay
		}
	}
}

// NewResolver wraps an extractor with the historical-mirror fallback.
func NewResolver(extractor Extractor, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{
		extractor: extractor,
		logger:    logger,
		attempts:  fallbackAttempts,
		delay:     fallbackDelay,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch resolves id via the primary extractor, falling back to the Wayback
// mirror when the primary reports the video gone. Transient failures
// propagate as errors; a video missing everywhere yields Unresolvable.
func (r *Resolver) Fetch(ctx context.Context, id string) (FetchResult, error) {
	raw, err := r.extractor.Video(ctx, id)
	if err == nil {
		return FetchResult{Raw: raw}, nil
	}
	if !IsNotFound(err) {
		return FetchResult{}, err
	}

	r.logger.Info("video gone upstream, searching the historical mirror", "video", id)

	mirrorURL := WaybackBase + YouTubeBase + "watch?v=" + id
	for attempt := 1; attempt <= r.attempts; attempt++ {
		raw, err := r.extractor.Video(ctx, mirrorURL)
		if err == nil {
			raw.Availability = "recovered"
			return FetchResult{Raw: raw, Recovered: true}, nil
		}
		if !IsNotFound(err) && !IsTransient(err) {
			return FetchResult{}, err
		}
		if attempt < r.attempts {
			r.logger.Info("mirror attempt failed, retrying",
				"video", id, "attempts_left", r.attempts-attempt)
			select {
			case <-ctx.Done():
				return FetchResult{}, ctx.Err()
			default:
			}
			r.sleep(r.delay)
		}
	}

	r.logger.Warn("failed recovering video from the historical mirror", "video", id)
	return FetchResult{Unresolvable: true}, nil
}
