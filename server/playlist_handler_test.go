package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"tunedex/model"
)

func TestCreatePlaylistHandler_MissingTitle(t *testing.T) {
	router, _ := newTestServer()

	w := postJSON(t, router, "/api/playlists", map[string]any{"user_id": 1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing title, got %d", w.Code)
	}
}

func TestCreatePlaylistHandler_DanglingUserID(t *testing.T) {
	router, _ := newTestServer()

	// The owning user is not checked for existence at creation time.
	w := postJSON(t, router, "/api/playlists", map[string]any{
		"title":   "X",
		"user_id": 999999,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for dangling user_id, got %d. Body: %s", w.Code, w.Body.String())
	}

	var created model.Playlist
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created playlist: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id on the created playlist")
	}
	if created.UserID != 999999 {
		t.Errorf("expected user_id stored as given, got %d", created.UserID)
	}
}

func TestAddSongToPlaylistHandler_NotFound(t *testing.T) {
	router, store := newTestServer()

	songID, err := store.CreateSong(context.Background(), &model.Song{Title: "Lonely"})
	if err != nil {
		t.Fatalf("failed to seed song: %v", err)
	}

	w := postJSON(t, router, "/api/playlist-songs", map[string]any{
		"playlist_id": 999999,
		"song_id":     songID,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Playlist or Song not found") {
		t.Errorf("unexpected 404 body: %s", w.Body.String())
	}
}

func TestAddSongToPlaylistHandler_DuplicatePair(t *testing.T) {
	router, store := newTestServer()

	playlistID, err := store.CreatePlaylist(context.Background(), &model.Playlist{Title: "Mix", UserID: 1})
	if err != nil {
		t.Fatalf("failed to seed playlist: %v", err)
	}
	songID, err := store.CreateSong(context.Background(), &model.Song{Title: "Once"})
	if err != nil {
		t.Fatalf("failed to seed song: %v", err)
	}

	body := map[string]any{"playlist_id": playlistID, "song_id": songID}

	w := postJSON(t, router, "/api/playlist-songs", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on first link, got %d. Body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Song added to playlist successfully") {
		t.Errorf("unexpected first link body: %s", w.Body.String())
	}

	// The composite key rejects the repeated pair; the handler maps it to 409.
	w = postJSON(t, router, "/api/playlist-songs", body)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 on duplicate link, got %d. Body: %s", w.Code, w.Body.String())
	}
	if len(store.playlistSongs) != 1 {
		t.Errorf("expected exactly one association row, got %d", len(store.playlistSongs))
	}
}

func TestGetPlaylistSongsHandler_NotFound(t *testing.T) {
	router, _ := newTestServer()

	w := getJSON(t, router, "/api/playlists/999999/songs")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing playlist, got %d", w.Code)
	}
}

func TestGetPlaylistSongsHandler_Empty(t *testing.T) {
	router, store := newTestServer()

	playlistID, err := store.CreatePlaylist(context.Background(), &model.Playlist{Title: "Empty", UserID: 1})
	if err != nil {
		t.Fatalf("failed to seed playlist: %v", err)
	}

	w := getJSON(t, router, "/api/playlists/1/songs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty playlist %d, got %d", playlistID, w.Code)
	}

	var entries []*model.PlaylistSongEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode entries: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty array, got %v", entries)
	}
}

func TestGetPlaylistSongsHandler_Joined(t *testing.T) {
	router, store := newTestServer()

	ctx := context.Background()
	playlistID, err := store.CreatePlaylist(ctx, &model.Playlist{Title: "Jazz", UserID: 1})
	if err != nil {
		t.Fatalf("failed to seed playlist: %v", err)
	}

	genre := "jazz"
	duration := int64(312)
	songID, err := store.CreateSong(ctx, &model.Song{Title: "So What", Genre: &genre, Duration: &duration})
	if err != nil {
		t.Fatalf("failed to seed song: %v", err)
	}
	country := "US"
	artistID, err := store.CreateArtist(ctx, &model.Artist{Name: "Miles", Country: &country})
	if err != nil {
		t.Fatalf("failed to seed artist: %v", err)
	}
	if err := store.AddSong(ctx, playlistID, songID); err != nil {
		t.Fatalf("failed to seed playlist song: %v", err)
	}
	if err := store.AddArtist(ctx, songID, artistID); err != nil {
		t.Fatalf("failed to seed song artist: %v", err)
	}

	w := getJSON(t, router, "/api/playlists/1/songs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var entries []*model.PlaylistSongEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.SongID != songID || entry.Title != "So What" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Genre == nil || *entry.Genre != "jazz" {
		t.Errorf("unexpected genre: %v", entry.Genre)
	}
	if entry.Duration == nil || *entry.Duration != 312 {
		t.Errorf("unexpected duration: %v", entry.Duration)
	}
	if len(entry.Artists) != 1 || entry.Artists[0].Name != "Miles" {
		t.Errorf("unexpected artists: %+v", entry.Artists)
	}
}
