package sqldb

import (
	"context"
	"database/sql"
)

const insertComment = `INSERT INTO comments (
	comment_id, video, author, text, like_count, is_favorited, author_is_uploader, parent, timestamp
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertCommentParams carries a comments row.
type InsertCommentParams struct {
	CommentID        string
	Video            string
	Author           sql.NullString
	Text             sql.NullString
	LikeCount        sql.NullInt64
	IsFavorited      sql.NullInt64
	AuthorIsUploader sql.NullInt64
	Parent           sql.NullString
	Timestamp        sql.NullInt64
}

func (q *Queries) InsertComment(ctx context.Context, arg InsertCommentParams) error {
	_, err := q.db.ExecContext(ctx, insertComment,
		arg.CommentID, arg.Video, arg.Author, arg.Text, arg.LikeCount,
		arg.IsFavorited, arg.AuthorIsUploader, arg.Parent, arg.Timestamp)
	return err
}

const deleteCommentsByVideo = `DELETE FROM comments WHERE video = ?`

func (q *Queries) DeleteCommentsByVideo(ctx context.Context, video string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteCommentsByVideo, video)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countCommentsByVideo = `SELECT COUNT(*) FROM comments WHERE video = ?`

func (q *Queries) CountCommentsByVideo(ctx context.Context, video string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countCommentsByVideo, video).Scan(&n)
	return n, err
}
