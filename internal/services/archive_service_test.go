package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/tubevault/tubevault/internal/database"
	"github.com/tubevault/tubevault/internal/media"
)

func setupServiceDB(t *testing.T) *database.Context {
	t.Helper()
	t.Setenv("TUBEVAULT_DIR", t.TempDir())

	ctx, err := database.CreateDatabase("")
	if err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}

	t.Cleanup(func() {
		if err := database.CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func int64p(v int64) *int64 { return &v }

func strp(v string) *string { return &v }

func rickAstley() media.Video {
	return media.Video{
		ID:           "dQw4w9WgXcQ",
		Title:        "Never Gonna Give You Up",
		Description:  "Official video",
		ChannelID:    "UCuAXFkgsw1L7xaCfnd5JJOw",
		UploaderID:   "@RickAstleyYT",
		UploaderName: "Rick Astley",
		ChannelName:  "Rick Astley",
		ChannelURL:   "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw",
		ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		Duration:     int64p(212),
		Views:        int64p(1400000000),
		Likes:        int64p(16000000),
		Dislikes:     int64p(500000),
		Availability: media.Available,
		Category:     strp("Music"),
		Tags:         []string{"rock", "80s"},
		Comments: []media.Comment{
			{ID: "c-root", AuthorID: "@fan", AuthorName: "A Fan", Text: "classic"},
			{ID: "c-reply", AuthorID: "@fan2", Text: "agreed", ParentID: strp("c-root")},
		},
	}
}

func TestArchiveStoresFullGraph(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewArchiveService(dbCtx)

	status, err := svc.Archive(ctx, rickAstley())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if status != media.StatusCreated {
		t.Fatalf("expected created, got %v", status)
	}

	repo := database.NewVideoRepository(dbCtx)
	record, err := repo.FindByID(ctx, "dQw4w9WgXcQ")
	if err != nil || record == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if record.Category == nil || *record.Category != "Music" {
		t.Fatalf("expected category Music, got %v", record.Category)
	}
	if record.Availability != media.Available {
		t.Fatalf("expected available, got %v", record.Availability)
	}

	tags, err := dbCtx.Queries.ListVideoTags(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("ListVideoTags failed: %v", err)
	}
	if len(tags) != 2 || tags[0] != "80s" || tags[1] != "rock" {
		t.Fatalf("unexpected tags %v", tags)
	}

	comments, err := dbCtx.Queries.CountCommentsByVideo(ctx, "dQw4w9WgXcQ")
	if err != nil || comments != 2 {
		t.Fatalf("expected 2 comments, got %d (err=%v)", comments, err)
	}

	var channelUser string
	err = dbCtx.DB.QueryRow(`SELECT user FROM channels WHERE channel_id = ?`, "UCuAXFkgsw1L7xaCfnd5JJOw").Scan(&channelUser)
	if err != nil {
		t.Fatalf("channel row missing: %v", err)
	}
	if channelUser != "@RickAstleyYT" {
		t.Fatalf("expected channel linked to uploader, got %q", channelUser)
	}
}

func TestArchiveIsIdempotent(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewArchiveService(dbCtx)

	if _, err := svc.Archive(ctx, rickAstley()); err != nil {
		t.Fatalf("first Archive failed: %v", err)
	}

	changed := rickAstley()
	changed.Title = "A Different Title"
	changed.Comments = nil

	status, err := svc.Archive(ctx, changed)
	if err != nil {
		t.Fatalf("second Archive failed: %v", err)
	}
	if status != media.StatusAlreadyArchived {
		t.Fatalf("expected already archived, got %v", status)
	}

	record, err := database.NewVideoRepository(dbCtx).FindByID(ctx, "dQw4w9WgXcQ")
	if err != nil || record == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if record.Title != "Never Gonna Give You Up" {
		t.Fatalf("second archive must not overwrite, got title %q", record.Title)
	}

	comments, err := dbCtx.Queries.CountCommentsByVideo(ctx, "dQw4w9WgXcQ")
	if err != nil || comments != 2 {
		t.Fatalf("expected comments untouched, got %d (err=%v)", comments, err)
	}
}

func TestMarkLostWritesPlaceholderRowOnly(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewArchiveService(dbCtx)

	status, err := svc.MarkLost(ctx, "gone4everXX")
	if err != nil {
		t.Fatalf("MarkLost failed: %v", err)
	}
	if status != media.StatusLost {
		t.Fatalf("expected lost, got %v", status)
	}

	var title sql.NullString
	var availability string
	err = dbCtx.DB.QueryRow(`SELECT title, availability FROM videos WHERE video_id = ?`, "gone4everXX").Scan(&title, &availability)
	if err != nil {
		t.Fatalf("placeholder row missing: %v", err)
	}
	if title.Valid {
		t.Fatalf("placeholder must carry no metadata, got title %q", title.String)
	}
	if availability != string(media.Lost) {
		t.Fatalf("expected lost availability, got %q", availability)
	}
}

func TestMarkLostNeverDowngradesArchivedVideo(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewArchiveService(dbCtx)

	if _, err := svc.Archive(ctx, rickAstley()); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if _, err := svc.MarkLost(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("MarkLost failed: %v", err)
	}

	record, err := database.NewVideoRepository(dbCtx).FindByID(ctx, "dQw4w9WgXcQ")
	if err != nil || record == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if record.Availability != media.Available || record.Title == "" {
		t.Fatalf("archived record was downgraded: %+v", record)
	}
}

func TestArchiveHealsLostVideoAsRecovered(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewArchiveService(dbCtx)

	if _, err := svc.MarkLost(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("MarkLost failed: %v", err)
	}

	status, err := svc.Archive(ctx, rickAstley())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if status != media.StatusRecovered {
		t.Fatalf("expected recovered, got %v", status)
	}

	record, err := database.NewVideoRepository(dbCtx).FindByID(ctx, "dQw4w9WgXcQ")
	if err != nil || record == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if record.Availability != media.Available {
		t.Fatalf("primary heal keeps available, got %v", record.Availability)
	}
	if record.Title != "Never Gonna Give You Up" {
		t.Fatalf("healed row should carry full metadata, got %q", record.Title)
	}
}

func TestArchiveMirrorCopyStoredAsRecovered(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewArchiveService(dbCtx)

	video := rickAstley()
	video.Availability = media.Recovered

	status, err := svc.Archive(ctx, video)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if status != media.StatusRecovered {
		t.Fatalf("expected recovered, got %v", status)
	}
}
