package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tubevault/tubevault/internal/config"
	"github.com/tubevault/tubevault/internal/database"
	"github.com/tubevault/tubevault/internal/enrich"
	"github.com/tubevault/tubevault/internal/logging"
	"github.com/tubevault/tubevault/internal/usecase"
	"github.com/tubevault/tubevault/internal/youtube"
)

func newLogger() *slog.Logger {
	return logging.New(logging.Options{Level: logLevel})
}

// withArchiver opens the archive, builds the pipeline from the persisted
// configuration, and runs fn with it. The archive is closed afterwards.
func withArchiver(fn func(ctx context.Context, archiver *usecase.Archiver) error) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return err
	}
	defer func() {
		_ = database.CloseDatabase(dbCtx)
	}()

	extractor := youtube.NewYtdlpExtractor(cfg.YtdlpPath, cfg.FetchComments)
	resolver := youtube.NewResolver(extractor, logger)
	enricher := enrich.NewClient(cfg.DownloadThumbnails, logger)
	archiver := usecase.NewArchiver(dbCtx, resolver, extractor, enricher, logger, os.Stderr)

	return fn(context.Background(), archiver)
}
