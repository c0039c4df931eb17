package database

import (
	sqldb "github.com/tubevault/tubevault/internal/database/sqlc"
	"github.com/tubevault/tubevault/internal/media"
)

func VideoInsertParams(v media.Video) sqldb.InsertVideoParams {
	return sqldb.InsertVideoParams{
		VideoID:         v.ID,
		Title:           nullString(v.Title),
		Description:     nullString(v.Description),
		Channel:         nullString(v.ChannelID),
		Thumbnail:       v.Thumbnail,
		ThumbnailURL:    nullString(v.ThumbnailURL),
		Duration:        int64PtrToNullInt64(v.Duration),
		Views:           int64PtrToNullInt64(v.Views),
		AgeLimit:        int64PtrToNullInt64(v.AgeLimit),
		LiveStatus:      stringPtrToNullString(v.LiveStatus),
		Likes:           int64PtrToNullInt64(v.Likes),
		Dislikes:        int64PtrToNullInt64(v.Dislikes),
		Rating:          float64PtrToNullFloat64(v.Rating),
		UploadTimestamp: int64PtrToNullInt64(v.UploadedAt),
		Availability:    string(v.Availability),
		Width:           int64PtrToNullInt64(v.Width),
		Height:          int64PtrToNullInt64(v.Height),
		FPS:             float64PtrToNullFloat64(v.FPS),
		AudioChannels:   int64PtrToNullInt64(v.AudioChans),
		Category:        stringPtrToNullString(v.Category),
		Filesize:        int64PtrToNullInt64(v.Filesize),
	}
}

func CommentInsertParams(videoID string, c media.Comment) sqldb.InsertCommentParams {
	return sqldb.InsertCommentParams{
		CommentID:        c.ID,
		Video:            videoID,
		Author:           nullString(c.AuthorID),
		Text:             nullString(c.Text),
		LikeCount:        int64PtrToNullInt64(c.LikeCount),
		IsFavorited:      boolToNullInt64(c.Favorited),
		AuthorIsUploader: boolToNullInt64(c.FromUploader),
		Parent:           stringPtrToNullString(c.ParentID),
		Timestamp:        int64PtrToNullInt64(c.Timestamp),
	}
}

func PlaylistInsertParams(p media.Playlist) sqldb.InsertPlaylistParams {
	return sqldb.InsertPlaylistParams{
		PlaylistID:  p.ID,
		Channel:     stringPtrToNullString(p.ChannelID),
		Created:     int64PtrToNullInt64(p.CreatedAt),
		Updated:     int64PtrToNullInt64(p.UpdatedAt),
		Title:       nullString(p.Title),
		Description: nullString(p.Description),
		Visibility:  nullString(p.Visibility),
	}
}

func videoRecordFromRow(row sqldb.Video) VideoRecord {
	return VideoRecord{
		ID:           row.VideoID,
		Title:        optionalString(row.Title),
		Description:  optionalString(row.Description),
		ChannelID:    optionalStringPtr(row.Channel),
		ThumbnailURL: optionalString(row.ThumbnailURL),
		Duration:     optionalInt64Ptr(row.Duration),
		Views:        optionalInt64Ptr(row.Views),
		AgeLimit:     optionalInt64Ptr(row.AgeLimit),
		LiveStatus:   optionalStringPtr(row.LiveStatus),
		Likes:        optionalInt64Ptr(row.Likes),
		Dislikes:     optionalInt64Ptr(row.Dislikes),
		Rating:       optionalFloat64Ptr(row.Rating),
		UploadedAt:   optionalInt64Ptr(row.UploadTimestamp),
		Availability: media.Availability(row.Availability),
		Width:        optionalInt64Ptr(row.Width),
		Height:       optionalInt64Ptr(row.Height),
		FPS:          optionalFloat64Ptr(row.FPS),
		AudioChans:   optionalInt64Ptr(row.AudioChannels),
		Category:     optionalStringPtr(row.Category),
		Filesize:     optionalInt64Ptr(row.Filesize),
	}
}
