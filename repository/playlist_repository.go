package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tunedex/model"
)

// PlaylistRepository defines the interface for playlist data operations,
// including the playlist-song association.
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) (int64, error)
	GetPlaylistByID(ctx context.Context, id int64) (*model.Playlist, error)
	GetAllPlaylists(ctx context.Context) ([]*model.Playlist, error)

	// AddSong inserts the (playlist, song) pair unconditionally. A repeated
	// pair violates the composite primary key and returns the store error.
	AddSong(ctx context.Context, playlistID, songID int64) error

	// GetSongs returns the songs of a playlist in association order.
	GetSongs(ctx context.Context, playlistID int64) ([]*model.Song, error)
}

// mysqlPlaylistRepository implements PlaylistRepository for MySQL.
type mysqlPlaylistRepository struct {
	db *sql.DB
}

// NewMySQLPlaylistRepository creates a new mysqlPlaylistRepository.
func NewMySQLPlaylistRepository(db *sql.DB) PlaylistRepository {
	return &mysqlPlaylistRepository{db: db}
}

// CreatePlaylist adds a new playlist to the database. The user reference is
// stored as given; ownership is not checked here.
func (r *mysqlPlaylistRepository) CreatePlaylist(ctx context.Context, playlist *model.Playlist) (int64, error) {
	query := `INSERT INTO playlists (title, user_id, created_at, updated_at) VALUES (?, ?, ?, ?)`

	now := time.Now()
	res, err := r.db.ExecContext(ctx, query, playlist.Title, playlist.UserID, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to execute create playlist statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for playlist: %w", err)
	}
	return id, nil
}

// GetPlaylistByID retrieves a playlist by its ID.
func (r *mysqlPlaylistRepository) GetPlaylistByID(ctx context.Context, id int64) (*model.Playlist, error) {
	query := `SELECT id, title, user_id, created_at, updated_at FROM playlists WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	playlist := &model.Playlist{}
	err := row.Scan(&playlist.ID, &playlist.Title, &playlist.UserID, &playlist.CreatedAt, &playlist.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Playlist not found
		}
		return nil, fmt.Errorf("failed to scan playlist row for ID %d: %w", id, err)
	}
	return playlist, nil
}

// GetAllPlaylists retrieves every playlist in storage order.
func (r *mysqlPlaylistRepository) GetAllPlaylists(ctx context.Context) ([]*model.Playlist, error) {
	query := `SELECT id, title, user_id, created_at, updated_at FROM playlists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]*model.Playlist, 0)
	for rows.Next() {
		playlist := &model.Playlist{}
		if err := rows.Scan(&playlist.ID, &playlist.Title, &playlist.UserID, &playlist.CreatedAt, &playlist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan playlist in GetAllPlaylists: %w", err)
		}
		playlists = append(playlists, playlist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in GetAllPlaylists: %w", err)
	}

	return playlists, nil
}

// AddSong links a song into a playlist.
func (r *mysqlPlaylistRepository) AddSong(ctx context.Context, playlistID, songID int64) error {
	query := `INSERT INTO playlist_songs (playlist_id, song_id, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, playlistID, songID, time.Now()); err != nil {
		return fmt.Errorf("failed to add song %d to playlist %d: %w", songID, playlistID, err)
	}
	return nil
}

// GetSongs returns the songs linked to a playlist, oldest link first.
func (r *mysqlPlaylistRepository) GetSongs(ctx context.Context, playlistID int64) ([]*model.Song, error) {
	query := `
		SELECT s.id, s.title, s.genre, s.duration, s.created_at, s.updated_at
		FROM songs s
		JOIN playlist_songs ps ON s.id = ps.song_id
		WHERE ps.playlist_id = ?
		ORDER BY ps.created_at, ps.song_id
	`

	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs for playlist %d: %w", playlistID, err)
	}
	defer rows.Close()

	songs := make([]*model.Song, 0)
	for rows.Next() {
		song := &model.Song{}
		if err := rows.Scan(&song.ID, &song.Title, &song.Genre, &song.Duration, &song.CreatedAt, &song.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan song in GetSongs: %w", err)
		}
		songs = append(songs, song)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in GetSongs: %w", err)
	}

	return songs, nil
}
