// Package config resolves storage locations and loads the persisted
// archiver configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the persisted archiver settings.
type Config struct {
	// DownloadThumbnails controls whether thumbnail binaries are fetched
	// and stored alongside metadata.
	DownloadThumbnails bool `toml:"download_thumbnails"`
	// FetchComments controls whether the extractor is asked for the
	// comment thread.
	FetchComments bool `toml:"fetch_comments"`
	// YtdlpPath is the metadata extractor binary; empty means "yt-dlp"
	// on PATH.
	YtdlpPath string `toml:"ytdlp_path"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		DownloadThumbnails: true,
		FetchComments:      true,
		YtdlpPath:          "yt-dlp",
	}
}

// DataDir resolves the base directory for the database, lock file, and
// config. TUBEVAULT_DIR wins, then the XDG data home, then a temp-dir
// fallback when no home directory is resolvable.
func DataDir() string {
	if explicit := os.Getenv("TUBEVAULT_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "tubevault")
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "tubevault")
}

// DBPath returns the absolute path of the SQLite database file.
func DBPath() string {
	return filepath.Join(DataDir(), "archive.db")
}

// LockPath returns the single-writer lock file path.
func LockPath() string {
	return filepath.Join(DataDir(), "tubevault.lock")
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(DataDir(), "config.toml")
}

// Load reads the config file, resetting it to defaults when it is missing
// or unreadable. A parse failure discards the whole file rather than
// applying it partially.
func Load() (Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			return cfg, Save(cfg)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		return cfg, Save(cfg)
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating the data dir when needed.
func Save(cfg Config) error {
	if err := os.MkdirAll(DataDir(), 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Set updates a single boolean setting by its config key name.
func Set(cfg *Config, key string, value bool) error {
	switch key {
	case "download_thumbnails", "thumbnails":
		cfg.DownloadThumbnails = value
	case "fetch_comments", "comments":
		cfg.FetchComments = value
	default:
		return fmt.Errorf("unknown configuration %q", key)
	}
	return nil
}
