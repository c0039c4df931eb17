package sqldb

import "context"

const historyExists = `SELECT EXISTS (SELECT 1 FROM history WHERE video = ? AND watched = ?)`

// HistoryPairParams identifies one (video, watched) pair.
type HistoryPairParams struct {
	Video   string
	Watched int64
}

func (q *Queries) HistoryExists(ctx context.Context, arg HistoryPairParams) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, historyExists, arg.Video, arg.Watched).Scan(&exists)
	return exists, err
}

const insertHistory = `INSERT INTO history (video, watched) VALUES (?, ?)`

func (q *Queries) InsertHistory(ctx context.Context, arg HistoryPairParams) error {
	_, err := q.db.ExecContext(ctx, insertHistory, arg.Video, arg.Watched)
	return err
}

const countHistory = `SELECT COUNT(*) FROM history`

func (q *Queries) CountHistory(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countHistory).Scan(&n)
	return n, err
}
