package sqldb

import "context"

const insertTag = `INSERT OR IGNORE INTO tags (name) VALUES (?)`

func (q *Queries) InsertTag(ctx context.Context, name string) error {
	_, err := q.db.ExecContext(ctx, insertTag, name)
	return err
}

const insertVideoTag = `INSERT OR IGNORE INTO video_tags (video, tag) VALUES (?, ?)`

// InsertVideoTagParams links one tag to one video.
type InsertVideoTagParams struct {
	Video string
	Tag   string
}

func (q *Queries) InsertVideoTag(ctx context.Context, arg InsertVideoTagParams) error {
	_, err := q.db.ExecContext(ctx, insertVideoTag, arg.Video, arg.Tag)
	return err
}

const listVideoTags = `SELECT tag FROM video_tags WHERE video = ? ORDER BY tag`

func (q *Queries) ListVideoTags(ctx context.Context, video string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listVideoTags, video)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
