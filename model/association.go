package model

import "time"

// PlaylistSong links a song into a playlist. The composite primary key keeps
// a given (playlist, song) pair unique at the store level.
type PlaylistSong struct {
	PlaylistID int64     `json:"playlist_id" gorm:"primaryKey;autoIncrement:false"`
	SongID     int64     `json:"song_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `json:"created_at"`
}

// SongArtist links an artist to a song, unique per (song, artist) pair.
type SongArtist struct {
	SongID    int64     `json:"song_id" gorm:"primaryKey;autoIncrement:false"`
	ArtistID  int64     `json:"artist_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}
