package server

import (
	"context"
	"fmt"
	"time"

	"tunedex/model"
)

// fakeStore is an in-memory implementation of all four repository interfaces
// for handler tests. Uniqueness violations return the MySQL-style
// "Duplicate entry" error the handlers classify on.
type fakeStore struct {
	users     []*model.User
	playlists []*model.Playlist
	songs     []*model.Song
	artists   []*model.Artist

	playlistSongs []model.PlaylistSong
	songArtists   []model.SongArtist

	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) genID() int64 {
	f.nextID++
	return f.nextID
}

// UserRepository

func (f *fakeStore) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, fmt.Errorf("Duplicate entry '%s' for key 'users.email'", user.Email)
		}
	}
	stored := *user
	stored.ID = f.genID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.users = append(f.users, &stored)
	return stored.ID, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, len(f.users))
	copy(users, f.users)
	return users, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id int64) error {
	owned := make(map[int64]bool)
	kept := f.playlists[:0]
	for _, p := range f.playlists {
		if p.UserID == id {
			owned[p.ID] = true
		} else {
			kept = append(kept, p)
		}
	}
	f.playlists = kept

	links := f.playlistSongs[:0]
	for _, ps := range f.playlistSongs {
		if !owned[ps.PlaylistID] {
			links = append(links, ps)
		}
	}
	f.playlistSongs = links

	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			break
		}
	}
	return nil
}

// PlaylistRepository

func (f *fakeStore) CreatePlaylist(ctx context.Context, playlist *model.Playlist) (int64, error) {
	stored := *playlist
	stored.ID = f.genID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.playlists = append(f.playlists, &stored)
	return stored.ID, nil
}

func (f *fakeStore) GetPlaylistByID(ctx context.Context, id int64) (*model.Playlist, error) {
	for _, p := range f.playlists {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetAllPlaylists(ctx context.Context) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, len(f.playlists))
	copy(playlists, f.playlists)
	return playlists, nil
}

func (f *fakeStore) AddSong(ctx context.Context, playlistID, songID int64) error {
	for _, ps := range f.playlistSongs {
		if ps.PlaylistID == playlistID && ps.SongID == songID {
			return fmt.Errorf("Duplicate entry '%d-%d' for key 'playlist_songs.PRIMARY'", playlistID, songID)
		}
	}
	f.playlistSongs = append(f.playlistSongs, model.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
		CreatedAt:  time.Now(),
	})
	return nil
}

func (f *fakeStore) GetSongs(ctx context.Context, playlistID int64) ([]*model.Song, error) {
	songs := make([]*model.Song, 0)
	for _, ps := range f.playlistSongs {
		if ps.PlaylistID != playlistID {
			continue
		}
		for _, s := range f.songs {
			if s.ID == ps.SongID {
				songs = append(songs, s)
				break
			}
		}
	}
	return songs, nil
}

// SongRepository

func (f *fakeStore) CreateSong(ctx context.Context, song *model.Song) (int64, error) {
	stored := *song
	stored.ID = f.genID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.songs = append(f.songs, &stored)
	return stored.ID, nil
}

func (f *fakeStore) GetSongByID(ctx context.Context, id int64) (*model.Song, error) {
	for _, s := range f.songs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetAllSongs(ctx context.Context) ([]*model.Song, error) {
	songs := make([]*model.Song, len(f.songs))
	copy(songs, f.songs)
	return songs, nil
}

func (f *fakeStore) AddArtist(ctx context.Context, songID, artistID int64) error {
	for _, sa := range f.songArtists {
		if sa.SongID == songID && sa.ArtistID == artistID {
			return fmt.Errorf("Duplicate entry '%d-%d' for key 'song_artists.PRIMARY'", songID, artistID)
		}
	}
	f.songArtists = append(f.songArtists, model.SongArtist{
		SongID:    songID,
		ArtistID:  artistID,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeStore) HasArtist(ctx context.Context, songID, artistID int64) (bool, error) {
	for _, sa := range f.songArtists {
		if sa.SongID == songID && sa.ArtistID == artistID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetArtists(ctx context.Context, songID int64) ([]*model.Artist, error) {
	artists := make([]*model.Artist, 0)
	for _, sa := range f.songArtists {
		if sa.SongID != songID {
			continue
		}
		for _, a := range f.artists {
			if a.ID == sa.ArtistID {
				artists = append(artists, a)
				break
			}
		}
	}
	return artists, nil
}

// ArtistRepository

func (f *fakeStore) CreateArtist(ctx context.Context, artist *model.Artist) (int64, error) {
	stored := *artist
	stored.ID = f.genID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.artists = append(f.artists, &stored)
	return stored.ID, nil
}

func (f *fakeStore) GetArtistByID(ctx context.Context, id int64) (*model.Artist, error) {
	for _, a := range f.artists {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetAllArtists(ctx context.Context) ([]*model.Artist, error) {
	artists := make([]*model.Artist, len(f.artists))
	copy(artists, f.artists)
	return artists, nil
}
