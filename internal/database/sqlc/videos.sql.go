package sqldb

import (
	"context"
	"database/sql"
)

// Video mirrors a row of the videos table.
type Video struct {
	VideoID         string
	Title           sql.NullString
	Description     sql.NullString
	Channel         sql.NullString
	Thumbnail       []byte
	ThumbnailURL    sql.NullString
	Duration        sql.NullInt64
	Views           sql.NullInt64
	AgeLimit        sql.NullInt64
	LiveStatus      sql.NullString
	Likes           sql.NullInt64
	Dislikes        sql.NullInt64
	Rating          sql.NullFloat64
	UploadTimestamp sql.NullInt64
	Availability    string
	Width           sql.NullInt64
	Height          sql.NullInt64
	FPS             sql.NullFloat64
	AudioChannels   sql.NullInt64
	Category        sql.NullString
	Filesize        sql.NullInt64
	Extra           sql.NullString
}

const findVideoAvailability = `SELECT video_id, availability FROM videos WHERE video_id = ?`

// FindVideoAvailabilityRow carries the cheap existence probe result.
type FindVideoAvailabilityRow struct {
	VideoID      string
	Availability string
}

func (q *Queries) FindVideoAvailability(ctx context.Context, videoID string) (FindVideoAvailabilityRow, error) {
	var row FindVideoAvailabilityRow
	err := q.db.QueryRowContext(ctx, findVideoAvailability, videoID).Scan(&row.VideoID, &row.Availability)
	return row, err
}

const findVideoByID = `SELECT video_id, title, description, channel, thumbnail, thumbnail_url,
	duration, views, age_limit, live_status, likes, dislikes, rating, upload_timestamp,
	availability, width, height, fps, audio_channels, category, filesize, extra
FROM videos WHERE video_id = ?`

func (q *Queries) FindVideoByID(ctx context.Context, videoID string) (Video, error) {
	var v Video
	err := q.db.QueryRowContext(ctx, findVideoByID, videoID).Scan(
		&v.VideoID, &v.Title, &v.Description, &v.Channel, &v.Thumbnail, &v.ThumbnailURL,
		&v.Duration, &v.Views, &v.AgeLimit, &v.LiveStatus, &v.Likes, &v.Dislikes,
		&v.Rating, &v.UploadTimestamp, &v.Availability, &v.Width, &v.Height, &v.FPS,
		&v.AudioChannels, &v.Category, &v.Filesize, &v.Extra,
	)
	return v, err
}

const insertVideo = `INSERT INTO videos (
	video_id, title, description, channel, thumbnail, thumbnail_url, duration, views,
	age_limit, live_status, likes, dislikes, rating, upload_timestamp, availability,
	width, height, fps, audio_channels, category, filesize, extra
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertVideoParams carries a full video row.
type InsertVideoParams struct {
	VideoID         string
	Title           sql.NullString
	Description     sql.NullString
	Channel         sql.NullString
	Thumbnail       []byte
	ThumbnailURL    sql.NullString
	Duration        sql.NullInt64
	Views           sql.NullInt64
	AgeLimit        sql.NullInt64
	LiveStatus      sql.NullString
	Likes           sql.NullInt64
	Dislikes        sql.NullInt64
	Rating          sql.NullFloat64
	UploadTimestamp sql.NullInt64
	Availability    string
	Width           sql.NullInt64
	Height          sql.NullInt64
	FPS             sql.NullFloat64
	AudioChannels   sql.NullInt64
	Category        sql.NullString
	Filesize        sql.NullInt64
	Extra           sql.NullString
}

func (q *Queries) InsertVideo(ctx context.Context, arg InsertVideoParams) error {
	_, err := q.db.ExecContext(ctx, insertVideo,
		arg.VideoID, arg.Title, arg.Description, arg.Channel, arg.Thumbnail, arg.ThumbnailURL,
		arg.Duration, arg.Views, arg.AgeLimit, arg.LiveStatus, arg.Likes, arg.Dislikes,
		arg.Rating, arg.UploadTimestamp, arg.Availability, arg.Width, arg.Height, arg.FPS,
		arg.AudioChannels, arg.Category, arg.Filesize, arg.Extra,
	)
	return err
}

const insertLostVideo = `INSERT OR IGNORE INTO videos (video_id, availability) VALUES (?, 'lost')`

func (q *Queries) InsertLostVideo(ctx context.Context, videoID string) error {
	_, err := q.db.ExecContext(ctx, insertLostVideo, videoID)
	return err
}

const updateVideo = `UPDATE videos SET
	title = ?, description = ?, channel = ?, thumbnail = ?, thumbnail_url = ?,
	duration = ?, views = ?, age_limit = ?, live_status = ?, likes = ?, dislikes = ?,
	rating = ?, upload_timestamp = ?, availability = ?, width = ?, height = ?, fps = ?,
	audio_channels = ?, category = ?, filesize = ?, extra = ?
WHERE video_id = ?`

func (q *Queries) UpdateVideo(ctx context.Context, arg InsertVideoParams) error {
	_, err := q.db.ExecContext(ctx, updateVideo,
		arg.Title, arg.Description, arg.Channel, arg.Thumbnail, arg.ThumbnailURL,
		arg.Duration, arg.Views, arg.AgeLimit, arg.LiveStatus, arg.Likes, arg.Dislikes,
		arg.Rating, arg.UploadTimestamp, arg.Availability, arg.Width, arg.Height, arg.FPS,
		arg.AudioChannels, arg.Category, arg.Filesize, arg.Extra,
		arg.VideoID,
	)
	return err
}

const deleteVideoByID = `DELETE FROM videos WHERE video_id = ?`

func (q *Queries) DeleteVideoByID(ctx context.Context, videoID string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteVideoByID, videoID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countVideos = `SELECT COUNT(*) FROM videos`

func (q *Queries) CountVideos(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countVideos).Scan(&n)
	return n, err
}

const listThumbnails = `SELECT video_id, thumbnail, thumbnail_url FROM videos WHERE thumbnail IS NOT NULL`

// ThumbnailRow carries one stored thumbnail blob and its source URL.
type ThumbnailRow struct {
	VideoID      string
	Thumbnail    []byte
	ThumbnailURL sql.NullString
}

func (q *Queries) ListThumbnails(ctx context.Context) ([]ThumbnailRow, error) {
	rows, err := q.db.QueryContext(ctx, listThumbnails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ThumbnailRow
	for rows.Next() {
		var row ThumbnailRow
		if err := rows.Scan(&row.VideoID, &row.Thumbnail, &row.ThumbnailURL); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
