package model

import "time"

// Playlist represents a named collection of songs owned by one user.
// The user_id reference is not validated at creation time.
type Playlist struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	UserID    int64     `json:"user_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaylistSongEntry is the joined record returned when listing the songs of a
// playlist: the song fields plus every artist linked to that song.
type PlaylistSongEntry struct {
	SongID   int64     `json:"song_id"`
	Title    string    `json:"title"`
	Genre    *string   `json:"genre"`
	Duration *int64    `json:"duration"`
	Artists  []*Artist `json:"artists"`
}
