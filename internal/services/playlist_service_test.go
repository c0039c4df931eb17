package services

import (
	"context"
	"testing"

	"github.com/tubevault/tubevault/internal/database"
	"github.com/tubevault/tubevault/internal/media"
)

const testPlaylistID = "PL0123456789abcdefghijklmnopqrstuv"

func archiveStub(t *testing.T, dbCtx *database.Context, id string) {
	t.Helper()
	v := rickAstley()
	v.ID = id
	v.Comments = nil
	v.Tags = nil
	if _, err := NewArchiveService(dbCtx).Archive(context.Background(), v); err != nil {
		t.Fatalf("Archive stub %s failed: %v", id, err)
	}
}

func TestPlaylistSnapshotReplacesMemberships(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewPlaylistService(dbCtx)

	for _, id := range []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"} {
		archiveStub(t, dbCtx, id)
	}

	playlist := media.Playlist{ID: testPlaylistID, Title: "Favourites", Visibility: "public"}
	if err := svc.BeginSnapshot(ctx, playlist); err != nil {
		t.Fatalf("BeginSnapshot failed: %v", err)
	}
	for _, id := range []string{"aaaaaaaaaaa", "bbbbbbbbbbb"} {
		if linked, err := svc.Link(ctx, testPlaylistID, media.PlaylistEntry{VideoID: id}); err != nil || !linked {
			t.Fatalf("Link %s failed: %v linked=%v", id, err, linked)
		}
	}

	// Second snapshot drops B and picks up C.
	if err := svc.BeginSnapshot(ctx, playlist); err != nil {
		t.Fatalf("second BeginSnapshot failed: %v", err)
	}
	for _, id := range []string{"aaaaaaaaaaa", "ccccccccccc"} {
		if linked, err := svc.Link(ctx, testPlaylistID, media.PlaylistEntry{VideoID: id}); err != nil || !linked {
			t.Fatalf("Link %s failed: %v linked=%v", id, err, linked)
		}
	}

	members, err := database.NewPlaylistRepository(dbCtx).Members(ctx, testPlaylistID)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 2 || members[0] != "aaaaaaaaaaa" || members[1] != "ccccccccccc" {
		t.Fatalf("expected [A C] after replace, got %v", members)
	}
}

func TestPlaylistLinkReportsDuplicates(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewPlaylistService(dbCtx)

	archiveStub(t, dbCtx, "aaaaaaaaaaa")
	if err := svc.BeginSnapshot(ctx, media.Playlist{ID: testPlaylistID, Title: "Favourites"}); err != nil {
		t.Fatalf("BeginSnapshot failed: %v", err)
	}

	linked, err := svc.Link(ctx, testPlaylistID, media.PlaylistEntry{VideoID: "aaaaaaaaaaa"})
	if err != nil || !linked {
		t.Fatalf("first Link failed: %v linked=%v", err, linked)
	}

	linked, err = svc.Link(ctx, testPlaylistID, media.PlaylistEntry{VideoID: "aaaaaaaaaaa"})
	if err != nil {
		t.Fatalf("duplicate Link must not error: %v", err)
	}
	if linked {
		t.Fatalf("duplicate Link must report false")
	}
}
