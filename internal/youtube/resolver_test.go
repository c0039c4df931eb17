package youtube

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type scriptedExtractor struct {
	calls   []string
	results map[string]func() (*RawMetadata, error)
}

func (s *scriptedExtractor) Video(_ context.Context, url string) (*RawMetadata, error) {
	s.calls = append(s.calls, url)
	if fn, ok := s.results[url]; ok {
		return fn()
	}
	return nil, &NotFoundError{ID: url, Reason: "no script for url"}
}

func (s *scriptedExtractor) PlaylistFlat(context.Context, string) (*RawPlaylist, error) {
	return nil, errors.New("not scripted")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFetchPrimarySuccess(t *testing.T) {
	ext := &scriptedExtractor{results: map[string]func() (*RawMetadata, error){
		"dQw4w9WgXcQ": func() (*RawMetadata, error) {
			return &RawMetadata{ID: "dQw4w9WgXcQ", FullTitle: "a title"}, nil
		},
	}}

	r := NewResolver(ext, quietLogger())
	res, err := r.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if res.Raw == nil || res.Recovered || res.Unresolvable {
		t.Fatalf("expected primary result, got %+v", res)
	}
	if len(ext.calls) != 1 {
		t.Fatalf("expected a single extractor call, got %d", len(ext.calls))
	}
}

func TestFetchFallbackRecovers(t *testing.T) {
	mirrorURL := WaybackBase + YouTubeBase + "watch?v=" + "dQw4w9WgXcQ"
	ext := &scriptedExtractor{results: map[string]func() (*RawMetadata, error){
		"dQw4w9WgXcQ": func() (*RawMetadata, error) {
			return nil, &NotFoundError{ID: "dQw4w9WgXcQ", Reason: "removed"}
		},
		mirrorURL: func() (*RawMetadata, error) {
			return &RawMetadata{ID: "dQw4w9WgXcQ", FullTitle: "from the mirror"}, nil
		},
	}}

	r := NewResolver(ext, quietLogger(), WithSleeper(func(time.Duration) {}))
	res, err := r.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !res.Recovered || res.Raw == nil {
		t.Fatalf("expected recovered result, got %+v", res)
	}
	if res.Raw.Availability != "recovered" {
		t.Fatalf("expected availability to be tagged recovered, got %q", res.Raw.Availability)
	}
}

func TestFetchFallbackBounded(t *testing.T) {
	var slept []time.Duration
	ext := &scriptedExtractor{results: map[string]func() (*RawMetadata, error){}}

	r := NewResolver(ext, quietLogger(), WithSleeper(func(d time.Duration) {
		slept = append(slept, d)
	}))
	res, err := r.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !res.Unresolvable {
		t.Fatalf("expected unresolvable outcome, got %+v", res)
	}

	mirrorCalls := 0
	for _, call := range ext.calls {
		if strings.HasPrefix(call, WaybackBase) {
			mirrorCalls++
		}
	}
	if mirrorCalls != 3 {
		t.Fatalf("expected exactly 3 mirror attempts, got %d", mirrorCalls)
	}

	var total time.Duration
	for _, d := range slept {
		total += d
	}
	if total < 4*time.Second {
		t.Fatalf("expected at least 4s of delay between attempts, got %v", total)
	}
}

func TestFetchTransientPropagates(t *testing.T) {
	ext := &scriptedExtractor{results: map[string]func() (*RawMetadata, error){
		"dQw4w9WgXcQ": func() (*RawMetadata, error) {
			return nil, &TransientError{ID: "dQw4w9WgXcQ", Err: errors.New("connection reset")}
		},
	}}

	r := NewResolver(ext, quietLogger())
	_, err := r.Fetch(context.Background(), "dQw4w9WgXcQ")
	if !IsTransient(err) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if len(ext.calls) != 1 {
		t.Fatalf("transient failure must not trigger the mirror, got %d calls", len(ext.calls))
	}
}

func TestClassifyRunError(t *testing.T) {
	err := classifyRunError("abc", []byte("ERROR: [youtube] abc: Video unavailable"), errors.New("exit status 1"))
	if !IsNotFound(err) {
		t.Fatalf("expected not-found classification, got %v", err)
	}

	err = classifyRunError("abc", []byte("ERROR: unable to download webpage: timed out"), errors.New("exit status 1"))
	if !IsTransient(err) {
		t.Fatalf("expected transient classification, got %v", err)
	}
}
