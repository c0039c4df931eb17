package normalize

import (
	"reflect"
	"testing"
	"time"

	"github.com/tubevault/tubevault/internal/enrich"
	"github.com/tubevault/tubevault/internal/media"
	"github.com/tubevault/tubevault/internal/youtube"
)

func strPtr(s string) *string   { return &s }
func intPtr(v int64) *int64     { return &v }
func fltPtr(v float64) *float64 { return &v }

func sampleRaw() *youtube.RawMetadata {
	return &youtube.RawMetadata{
		ID:           "dQw4w9WgXcQ",
		FullTitle:    "Some Video",
		Description:  strPtr("a real description"),
		ChannelID:    "UC123",
		ChannelName:  strPtr("Some Channel"),
		UploaderID:   "@someone",
		UploaderName: strPtr("Someone"),
		ViewCount:    intPtr(50),
		LikeCount:    intPtr(7),
		UploadDate:   "20091025",
		Categories:   []string{"Music", "Entertainment"},
		Tags:         []string{"rock"},
	}
}

func TestCanonicalIsDeterministic(t *testing.T) {
	raw := sampleRaw()
	enr := enrich.Enrichment{Likes: intPtr(100), Dislikes: intPtr(5)}

	first := Canonical(raw, enr)
	second := Canonical(raw, enr)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestCanonicalBoilerplateDescription(t *testing.T) {
	raw := sampleRaw()
	raw.Description = strPtr(DefaultDescription)

	v := Canonical(raw, enrich.Enrichment{})
	if v.Description != "" {
		t.Fatalf("boilerplate description should map to empty string, got %q", v.Description)
	}

	raw.Description = nil
	v = Canonical(raw, enrich.Enrichment{})
	if v.Description != "" {
		t.Fatalf("absent description should map to empty string, got %q", v.Description)
	}
}

func TestCanonicalCategoryAndTags(t *testing.T) {
	raw := sampleRaw()
	v := Canonical(raw, enrich.Enrichment{})
	if v.Category == nil || *v.Category != "Music" {
		t.Fatalf("expected first category Music, got %v", v.Category)
	}

	raw.Categories = nil
	v = Canonical(raw, enrich.Enrichment{})
	if v.Category != nil {
		t.Fatalf("missing categories should map to nil category, got %v", v.Category)
	}
	if len(v.Tags) != 1 || v.Tags[0] != "rock" {
		t.Fatalf("tags should be preserved, got %v", v.Tags)
	}
}

func TestCanonicalPrefersRatingService(t *testing.T) {
	raw := sampleRaw()
	enr := enrich.Enrichment{Likes: intPtr(100), Views: intPtr(1234), Rating: fltPtr(4.9)}

	v := Canonical(raw, enr)
	if *v.Likes != 100 {
		t.Fatalf("expected rating-service likes 100, got %d", *v.Likes)
	}
	if *v.Views != 1234 {
		t.Fatalf("expected rating-service views 1234, got %d", *v.Views)
	}
	if v.Rating == nil || *v.Rating != 4.9 {
		t.Fatalf("expected rating 4.9, got %v", v.Rating)
	}

	// Without enrichment, fall back to the extractor's own numbers.
	v = Canonical(raw, enrich.Enrichment{})
	if *v.Likes != 7 || *v.Views != 50 {
		t.Fatalf("expected extractor fallback likes=7 views=50, got %d/%d", *v.Likes, *v.Views)
	}
	if v.Dislikes != nil || v.Rating != nil {
		t.Fatalf("dislikes and rating have no extractor fallback, got %v/%v", v.Dislikes, v.Rating)
	}
}

func TestCanonicalUploadTimestamp(t *testing.T) {
	raw := sampleRaw()
	v := Canonical(raw, enrich.Enrichment{})

	want := time.Date(2009, 10, 25, 0, 0, 0, 0, time.UTC).Unix()
	if v.UploadedAt == nil || *v.UploadedAt != want {
		t.Fatalf("expected upload timestamp %d, got %v", want, v.UploadedAt)
	}

	raw.UploadDate = ""
	v = Canonical(raw, enrich.Enrichment{})
	if v.UploadedAt != nil {
		t.Fatalf("absent upload date should be nil, got %v", v.UploadedAt)
	}
}

func TestCanonicalFilesizeFallsBackToApproximate(t *testing.T) {
	raw := sampleRaw()
	raw.FilesizeApprox = intPtr(1024)
	v := Canonical(raw, enrich.Enrichment{})
	if v.Filesize == nil || *v.Filesize != 1024 {
		t.Fatalf("expected approximate filesize 1024, got %v", v.Filesize)
	}

	raw.Filesize = intPtr(2048)
	v = Canonical(raw, enrich.Enrichment{})
	if *v.Filesize != 2048 {
		t.Fatalf("exact filesize should win, got %d", *v.Filesize)
	}
}

func TestCanonicalCommentsRootSentinel(t *testing.T) {
	raw := sampleRaw()
	raw.Comments = []youtube.RawComment{
		{ID: "c1", AuthorID: "@a", Author: "A", Text: "top", Parent: "root"},
		{ID: "c2", AuthorID: "@b", Author: "B", Text: "reply", Parent: "c1"},
	}

	v := Canonical(raw, enrich.Enrichment{})
	if len(v.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(v.Comments))
	}
	if v.Comments[0].ParentID != nil {
		t.Fatalf("root sentinel should normalize to nil, got %v", *v.Comments[0].ParentID)
	}
	if v.Comments[1].ParentID == nil || *v.Comments[1].ParentID != "c1" {
		t.Fatalf("reply parent should be preserved, got %v", v.Comments[1].ParentID)
	}
}

func TestCanonicalAvailability(t *testing.T) {
	raw := sampleRaw()
	if v := Canonical(raw, enrich.Enrichment{}); v.Availability != media.Available {
		t.Fatalf("expected available, got %s", v.Availability)
	}

	raw.Availability = "recovered"
	if v := Canonical(raw, enrich.Enrichment{}); v.Availability != media.Recovered {
		t.Fatalf("expected recovered, got %s", v.Availability)
	}
}

func TestCanonicalChannelNameFallsBackToUploader(t *testing.T) {
	raw := sampleRaw()
	raw.ChannelName = nil
	v := Canonical(raw, enrich.Enrichment{})
	if v.ChannelName != "Someone" {
		t.Fatalf("expected channel name fallback to uploader, got %q", v.ChannelName)
	}

	raw.UploaderName = nil
	v = Canonical(raw, enrich.Enrichment{})
	if v.ChannelName != "@someone" {
		t.Fatalf("expected channel name fallback to uploader id, got %q", v.ChannelName)
	}
}
