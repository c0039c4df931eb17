package sqldb

import (
	"context"
	"database/sql"
)

const playlistExists = `SELECT EXISTS (SELECT 1 FROM playlists WHERE playlist_id = ?)`

func (q *Queries) PlaylistExists(ctx context.Context, playlistID string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, playlistExists, playlistID).Scan(&exists)
	return exists, err
}

const findPlaylistTitle = `SELECT title FROM playlists WHERE playlist_id = ?`

func (q *Queries) FindPlaylistTitle(ctx context.Context, playlistID string) (sql.NullString, error) {
	var title sql.NullString
	err := q.db.QueryRowContext(ctx, findPlaylistTitle, playlistID).Scan(&title)
	return title, err
}

const insertPlaylist = `INSERT INTO playlists (playlist_id, channel, created, updated, title, description, visibility)
VALUES (?, ?, ?, ?, ?, ?, ?)`

// InsertPlaylistParams carries a playlists row.
type InsertPlaylistParams struct {
	PlaylistID  string
	Channel     sql.NullString
	Created     sql.NullInt64
	Updated     sql.NullInt64
	Title       sql.NullString
	Description sql.NullString
	Visibility  sql.NullString
}

func (q *Queries) InsertPlaylist(ctx context.Context, arg InsertPlaylistParams) error {
	_, err := q.db.ExecContext(ctx, insertPlaylist,
		arg.PlaylistID, arg.Channel, arg.Created, arg.Updated,
		arg.Title, arg.Description, arg.Visibility)
	return err
}

const deletePlaylistByID = `DELETE FROM playlists WHERE playlist_id = ?`

func (q *Queries) DeletePlaylistByID(ctx context.Context, playlistID string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deletePlaylistByID, playlistID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteAllPlaylists = `DELETE FROM playlists`

func (q *Queries) DeleteAllPlaylists(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteAllPlaylists)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const insertPlaylistVideo = `INSERT INTO playlist_videos (playlist, video, added) VALUES (?, ?, ?)`

// InsertPlaylistVideoParams links one video into one playlist snapshot.
type InsertPlaylistVideoParams struct {
	Playlist string
	Video    string
	Added    sql.NullInt64
}

func (q *Queries) InsertPlaylistVideo(ctx context.Context, arg InsertPlaylistVideoParams) error {
	_, err := q.db.ExecContext(ctx, insertPlaylistVideo, arg.Playlist, arg.Video, arg.Added)
	return err
}

const listPlaylistMembers = `SELECT video FROM playlist_videos WHERE playlist = ? ORDER BY rowid`

func (q *Queries) ListPlaylistMembers(ctx context.Context, playlistID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listPlaylistMembers, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var video string
		if err := rows.Scan(&video); err != nil {
			return nil, err
		}
		members = append(members, video)
	}
	return members, rows.Err()
}
