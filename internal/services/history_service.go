package services

import (
	"context"
	"fmt"

	"github.com/tubevault/tubevault/internal/database"
	sqldb "github.com/tubevault/tubevault/internal/database/sqlc"
	"github.com/tubevault/tubevault/internal/media"
)

// HistoryService records watch events. The same (video, watched) pair is
// stored at most once, so re-imports of an export are harmless.
type HistoryService struct {
	ctx *database.Context
}

func NewHistoryService(dbCtx *database.Context) *HistoryService {
	return &HistoryService{ctx: dbCtx}
}

// AddWatch stores one watch event and reports whether it was new.
func (s *HistoryService) AddWatch(ctx context.Context, entry media.HistoryEntry) (bool, error) {
	if s.ctx == nil {
		return false, fmt.Errorf("history service: missing database context")
	}

	pair := sqldb.HistoryPairParams{Video: entry.VideoID, Watched: entry.WatchedAt}

	exists, err := s.ctx.Queries.HistoryExists(ctx, pair)
	if err != nil {
		return false, fmt.Errorf("failed to check history for %s: %w", entry.VideoID, err)
	}
	if exists {
		return false, nil
	}

	if err := s.ctx.Queries.InsertHistory(ctx, pair); err != nil {
		if database.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to store watch of %s: %w", entry.VideoID, err)
	}
	return true, nil
}
