package services

import (
	"context"
	"testing"

	"github.com/tubevault/tubevault/internal/media"
)

func TestHistoryDeduplicatesWatchEvents(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewHistoryService(dbCtx)

	archiveStub(t, dbCtx, "dQw4w9WgXcQ")

	entry := media.HistoryEntry{VideoID: "dQw4w9WgXcQ", WatchedAt: 1700000000}

	added, err := svc.AddWatch(ctx, entry)
	if err != nil || !added {
		t.Fatalf("first AddWatch failed: %v added=%v", err, added)
	}

	added, err = svc.AddWatch(ctx, entry)
	if err != nil {
		t.Fatalf("duplicate AddWatch must not error: %v", err)
	}
	if added {
		t.Fatalf("duplicate AddWatch must report false")
	}

	// A different timestamp for the same video is a distinct event.
	added, err = svc.AddWatch(ctx, media.HistoryEntry{VideoID: "dQw4w9WgXcQ", WatchedAt: 1700000500})
	if err != nil || !added {
		t.Fatalf("second watch failed: %v added=%v", err, added)
	}

	count, err := dbCtx.Queries.CountHistory(ctx)
	if err != nil || count != 2 {
		t.Fatalf("expected 2 history rows, got %d (err=%v)", count, err)
	}
}
