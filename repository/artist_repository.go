package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tunedex/model"
)

// ArtistRepository defines the interface for artist data operations.
type ArtistRepository interface {
	CreateArtist(ctx context.Context, artist *model.Artist) (int64, error)
	GetArtistByID(ctx context.Context, id int64) (*model.Artist, error)
	GetAllArtists(ctx context.Context) ([]*model.Artist, error)
}

// mysqlArtistRepository implements ArtistRepository for MySQL.
type mysqlArtistRepository struct {
	db *sql.DB
}

// NewMySQLArtistRepository creates a new mysqlArtistRepository.
func NewMySQLArtistRepository(db *sql.DB) ArtistRepository {
	return &mysqlArtistRepository{db: db}
}

// CreateArtist adds a new artist to the database.
func (r *mysqlArtistRepository) CreateArtist(ctx context.Context, artist *model.Artist) (int64, error) {
	query := `INSERT INTO artists (name, country, created_at, updated_at) VALUES (?, ?, ?, ?)`

	now := time.Now()
	res, err := r.db.ExecContext(ctx, query, artist.Name, artist.Country, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to execute create artist statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for artist: %w", err)
	}
	return id, nil
}

// GetArtistByID retrieves an artist by their ID.
func (r *mysqlArtistRepository) GetArtistByID(ctx context.Context, id int64) (*model.Artist, error) {
	query := `SELECT id, name, country, created_at, updated_at FROM artists WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	artist := &model.Artist{}
	err := row.Scan(&artist.ID, &artist.Name, &artist.Country, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Artist not found
		}
		return nil, fmt.Errorf("failed to scan artist row for ID %d: %w", id, err)
	}
	return artist, nil
}

// GetAllArtists retrieves every artist in storage order.
func (r *mysqlArtistRepository) GetAllArtists(ctx context.Context) ([]*model.Artist, error) {
	query := `SELECT id, name, country, created_at, updated_at FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		artist := &model.Artist{}
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Country, &artist.CreatedAt, &artist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artist in GetAllArtists: %w", err)
		}
		artists = append(artists, artist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in GetAllArtists: %w", err)
	}

	return artists, nil
}
