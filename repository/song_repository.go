package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tunedex/model"
)

// SongRepository defines the interface for song data operations, including
// the song-artist association.
type SongRepository interface {
	CreateSong(ctx context.Context, song *model.Song) (int64, error)
	GetSongByID(ctx context.Context, id int64) (*model.Song, error)
	GetAllSongs(ctx context.Context) ([]*model.Song, error)

	// AddArtist links an artist to a song.
	AddArtist(ctx context.Context, songID, artistID int64) error

	// HasArtist reports whether the (song, artist) link already exists.
	HasArtist(ctx context.Context, songID, artistID int64) (bool, error)

	// GetArtists returns the artists linked to a song, oldest link first.
	GetArtists(ctx context.Context, songID int64) ([]*model.Artist, error)
}

// mysqlSongRepository implements SongRepository for MySQL.
type mysqlSongRepository struct {
	db *sql.DB
}

// NewMySQLSongRepository creates a new mysqlSongRepository.
func NewMySQLSongRepository(db *sql.DB) SongRepository {
	return &mysqlSongRepository{db: db}
}

// CreateSong adds a new song to the database.
func (r *mysqlSongRepository) CreateSong(ctx context.Context, song *model.Song) (int64, error) {
	query := `INSERT INTO songs (title, genre, duration, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`

	now := time.Now()
	res, err := r.db.ExecContext(ctx, query, song.Title, song.Genre, song.Duration, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to execute create song statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for song: %w", err)
	}
	return id, nil
}

// GetSongByID retrieves a song by its ID.
func (r *mysqlSongRepository) GetSongByID(ctx context.Context, id int64) (*model.Song, error) {
	query := `SELECT id, title, genre, duration, created_at, updated_at FROM songs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	song := &model.Song{}
	err := row.Scan(&song.ID, &song.Title, &song.Genre, &song.Duration, &song.CreatedAt, &song.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Song not found
		}
		return nil, fmt.Errorf("failed to scan song row for ID %d: %w", id, err)
	}
	return song, nil
}

// GetAllSongs retrieves every song in storage order.
func (r *mysqlSongRepository) GetAllSongs(ctx context.Context) ([]*model.Song, error) {
	query := `SELECT id, title, genre, duration, created_at, updated_at FROM songs ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	songs := make([]*model.Song, 0)
	for rows.Next() {
		song := &model.Song{}
		if err := rows.Scan(&song.ID, &song.Title, &song.Genre, &song.Duration, &song.CreatedAt, &song.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan song in GetAllSongs: %w", err)
		}
		songs = append(songs, song)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in GetAllSongs: %w", err)
	}

	return songs, nil
}

// AddArtist links an artist to a song.
func (r *mysqlSongRepository) AddArtist(ctx context.Context, songID, artistID int64) error {
	query := `INSERT INTO song_artists (song_id, artist_id, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, songID, artistID, time.Now()); err != nil {
		return fmt.Errorf("failed to add artist %d to song %d: %w", artistID, songID, err)
	}
	return nil
}

// HasArtist reports whether the artist is already linked to the song.
func (r *mysqlSongRepository) HasArtist(ctx context.Context, songID, artistID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM song_artists WHERE song_id = ? AND artist_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, songID, artistID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check song %d artist %d link: %w", songID, artistID, err)
	}
	return count > 0, nil
}

// GetArtists returns the artists linked to a song, oldest link first.
func (r *mysqlSongRepository) GetArtists(ctx context.Context, songID int64) ([]*model.Artist, error) {
	query := `
		SELECT a.id, a.name, a.country, a.created_at, a.updated_at
		FROM artists a
		JOIN song_artists sa ON a.id = sa.artist_id
		WHERE sa.song_id = ?
		ORDER BY sa.created_at, sa.artist_id
	`

	rows, err := r.db.QueryContext(ctx, query, songID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists for song %d: %w", songID, err)
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		artist := &model.Artist{}
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Country, &artist.CreatedAt, &artist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artist in GetArtists: %w", err)
		}
		artists = append(artists, artist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in GetArtists: %w", err)
	}

	return artists, nil
}
