package sqldb

import (
	"context"
	"database/sql"
)

const insertUser = `INSERT OR IGNORE INTO users (user_id, name) VALUES (?, ?)`

// InsertUserParams carries a users row.
type InsertUserParams struct {
	UserID string
	Name   sql.NullString
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) error {
	_, err := q.db.ExecContext(ctx, insertUser, arg.UserID, arg.Name)
	return err
}

const insertChannel = `INSERT OR IGNORE INTO channels (channel_id, user, name, follower_count, channel_url)
VALUES (?, ?, ?, ?, ?)`

// InsertChannelParams carries a channels row.
type InsertChannelParams struct {
	ChannelID     string
	UserID        sql.NullString
	Name          sql.NullString
	FollowerCount sql.NullInt64
	ChannelURL    sql.NullString
}

func (q *Queries) InsertChannel(ctx context.Context, arg InsertChannelParams) error {
	_, err := q.db.ExecContext(ctx, insertChannel,
		arg.ChannelID, arg.UserID, arg.Name, arg.FollowerCount, arg.ChannelURL)
	return err
}

const insertCategory = `INSERT OR IGNORE INTO categories (name) VALUES (?)`

func (q *Queries) InsertCategory(ctx context.Context, name string) error {
	_, err := q.db.ExecContext(ctx, insertCategory, name)
	return err
}

const countCategories = `SELECT COUNT(*) FROM categories`

func (q *Queries) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countCategories).Scan(&n)
	return n, err
}
