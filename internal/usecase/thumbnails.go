package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DumpThumbnails exports every stored thumbnail blob to dir, one file per
// video named <id>.<ext> with the extension taken from the source URL.
// Files already present are left alone. It returns the number written.
func (a *Archiver) DumpThumbnails(ctx context.Context, dir string) (int, error) {
	thumbnails, err := a.videos.ListThumbnails(ctx)
	if err != nil {
		return 0, err
	}
	if len(thumbnails) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	dumped := 0
	for _, thumb := range thumbnails {
		if len(thumb.Thumbnail) == 0 {
			continue
		}

		path := filepath.Join(dir, thumb.VideoID+"."+thumbnailExt(thumb.SourceURL))
		if _, err := os.Stat(path); err == nil {
			continue
		}

		if err := os.WriteFile(path, thumb.Thumbnail, 0o644); err != nil {
			return dumped, fmt.Errorf("failed to write thumbnail for %s: %w", thumb.VideoID, err)
		}
		dumped++
	}

	a.logger.Info("thumbnails dumped", "count", dumped, "dir", dir)
	return dumped, nil
}

// thumbnailExt takes the extension from the last path segment of the source
// URL, dropping any query string.
func thumbnailExt(url string) string {
	ext := url[strings.LastIndex(url, ".")+1:]
	if q := strings.Index(ext, "?"); q >= 0 {
		ext = ext[:q]
	}
	if ext == "" || strings.ContainsAny(ext, "/\\") {
		return "jpg"
	}
	return ext
}
