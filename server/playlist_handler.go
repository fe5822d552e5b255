package server

import (
	"encoding/json"
	"net/http"

	"tunedex/logger"
	"tunedex/model"
)

// CreatePlaylistRequest is the create playlist request body.
type CreatePlaylistRequest struct {
	Title  string `json:"title"`
	UserID int64  `json:"user_id"`
}

// AddSongToPlaylistRequest is the playlist-song link request body.
type AddSongToPlaylistRequest struct {
	PlaylistID int64 `json:"playlist_id"`
	SongID     int64 `json:"song_id"`
}

// CreatePlaylistHandler creates a new playlist. The owning user_id is stored
// as given and not checked for existence.
func (h *APIHandler) CreatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	playlist := &model.Playlist{
		Title:  req.Title,
		UserID: req.UserID,
	}

	id, err := h.playlistRepo.CreatePlaylist(r.Context(), playlist)
	if err != nil {
		logger.Error("Failed to create playlist",
			logger.String("title", req.Title),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to create playlist", http.StatusInternalServerError)
		return
	}

	created, err := h.playlistRepo.GetPlaylistByID(r.Context(), id)
	if err != nil || created == nil {
		logger.Error("Failed to load created playlist", logger.Int64("playlistId", id), logger.ErrorField(err))
		http.Error(w, "Failed to load created playlist", http.StatusInternalServerError)
		return
	}

	logger.Info("Playlist created",
		logger.Int64("playlistId", id),
		logger.Int64("userId", created.UserID),
	)
	writeJSON(w, http.StatusCreated, created)
}

// GetPlaylistsHandler returns every playlist.
func (h *APIHandler) GetPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistRepo.GetAllPlaylists(r.Context())
	if err != nil {
		logger.Error("Failed to list playlists", logger.ErrorField(err))
		http.Error(w, "Failed to list playlists", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

// GetPlaylistHandler returns a single playlist by ID.
func (h *APIHandler) GetPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid playlist ID", http.StatusBadRequest)
		return
	}

	playlist, err := h.playlistRepo.GetPlaylistByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get playlist", logger.Int64("playlistId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get playlist", http.StatusInternalServerError)
		return
	}
	if playlist == nil {
		http.Error(w, "Playlist not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

// AddSongToPlaylistHandler links a song into a playlist. The insert is
// unconditional; a repeated pair hits the composite key and maps to 409.
func (h *APIHandler) AddSongToPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	var req AddSongToPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	playlist, err := h.playlistRepo.GetPlaylistByID(r.Context(), req.PlaylistID)
	if err != nil {
		logger.Error("Failed to get playlist", logger.Int64("playlistId", req.PlaylistID), logger.ErrorField(err))
		http.Error(w, "Failed to get playlist", http.StatusInternalServerError)
		return
	}

	song, err := h.songRepo.GetSongByID(r.Context(), req.SongID)
	if err != nil {
		logger.Error("Failed to get song", logger.Int64("songId", req.SongID), logger.ErrorField(err))
		http.Error(w, "Failed to get song", http.StatusInternalServerError)
		return
	}

	if playlist == nil || song == nil {
		http.Error(w, "Playlist or Song not found", http.StatusNotFound)
		return
	}

	if err := h.playlistRepo.AddSong(r.Context(), req.PlaylistID, req.SongID); err != nil {
		if isDuplicateEntry(err) {
			http.Error(w, "Song already in playlist", http.StatusConflict)
			return
		}
		logger.Error("Failed to add song to playlist",
			logger.Int64("playlistId", req.PlaylistID),
			logger.Int64("songId", req.SongID),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to add song to playlist", http.StatusInternalServerError)
		return
	}

	logger.Info("Song added to playlist",
		logger.Int64("playlistId", req.PlaylistID),
		logger.Int64("songId", req.SongID),
	)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Song added to playlist successfully",
	})
}

// GetPlaylistSongsHandler returns the songs of a playlist together with each
// song's linked artists, in association order.
func (h *APIHandler) GetPlaylistSongsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid playlist ID", http.StatusBadRequest)
		return
	}

	playlist, err := h.playlistRepo.GetPlaylistByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get playlist", logger.Int64("playlistId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get playlist", http.StatusInternalServerError)
		return
	}
	if playlist == nil {
		http.Error(w, "Playlist not found", http.StatusNotFound)
		return
	}

	songs, err := h.playlistRepo.GetSongs(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get playlist songs", logger.Int64("playlistId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get playlist songs", http.StatusInternalServerError)
		return
	}

	entries := make([]*model.PlaylistSongEntry, 0, len(songs))
	for _, song := range songs {
		artists, err := h.songRepo.GetArtists(r.Context(), song.ID)
		if err != nil {
			logger.Error("Failed to get song artists", logger.Int64("songId", song.ID), logger.ErrorField(err))
			http.Error(w, "Failed to get song artists", http.StatusInternalServerError)
			return
		}

		entries = append(entries, &model.PlaylistSongEntry{
			SongID:   song.ID,
			Title:    song.Title,
			Genre:    song.Genre,
			Duration: song.Duration,
			Artists:  artists,
		})
	}

	writeJSON(w, http.StatusOK, entries)
}
