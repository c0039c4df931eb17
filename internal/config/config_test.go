package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TUBEVAULT_DIR", tmp)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(tmp, "config.toml")); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
}

func TestLoadResetsInvalidFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TUBEVAULT_DIR", tmp)

	if err := os.WriteFile(filepath.Join(tmp, "config.toml"), []byte("{not toml"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults after reset, got %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TUBEVAULT_DIR", tmp)

	want := Config{DownloadThumbnails: false, FetchComments: true, YtdlpPath: "/opt/yt-dlp"}
	if err := Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestSetKnownAndUnknownKeys(t *testing.T) {
	cfg := Default()
	if err := Set(&cfg, "thumbnails", false); err != nil {
		t.Fatalf("Set thumbnails: %v", err)
	}
	if cfg.DownloadThumbnails {
		t.Fatalf("expected thumbnails disabled")
	}
	if err := Set(&cfg, "comments", false); err != nil {
		t.Fatalf("Set comments: %v", err)
	}
	if cfg.FetchComments {
		t.Fatalf("expected comments disabled")
	}
	if err := Set(&cfg, "bogus", true); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestDataDirPrefersEnvOverride(t *testing.T) {
	t.Setenv("TUBEVAULT_DIR", "/srv/tubevault")
	if got := DataDir(); got != "/srv/tubevault" {
		t.Fatalf("expected env override, got %q", got)
	}
}
