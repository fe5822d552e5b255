package server

import (
	"encoding/json"
	"net/http"

	"tunedex/logger"
	"tunedex/model"
)

// CreateSongRequest is the create song request body. Genre and duration are
// optional and stay null when omitted.
type CreateSongRequest struct {
	Title    string  `json:"title"`
	Genre    *string `json:"genre"`
	Duration *int64  `json:"duration"`
}

// AddArtistToSongRequest is the song-artist link request body.
type AddArtistToSongRequest struct {
	SongID   int64 `json:"song_id"`
	ArtistID int64 `json:"artist_id"`
}

// CreateSongHandler creates a new song.
func (h *APIHandler) CreateSongHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	song := &model.Song{
		Title:    req.Title,
		Genre:    req.Genre,
		Duration: req.Duration,
	}

	id, err := h.songRepo.CreateSong(r.Context(), song)
	if err != nil {
		logger.Error("Failed to create song",
			logger.String("title", req.Title),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to create song", http.StatusInternalServerError)
		return
	}

	created, err := h.songRepo.GetSongByID(r.Context(), id)
	if err != nil || created == nil {
		logger.Error("Failed to load created song", logger.Int64("songId", id), logger.ErrorField(err))
		http.Error(w, "Failed to load created song", http.StatusInternalServerError)
		return
	}

	logger.Info("Song created",
		logger.Int64("songId", id),
		logger.String("title", created.Title),
	)
	writeJSON(w, http.StatusCreated, created)
}

// GetSongsHandler returns every song.
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songRepo.GetAllSongs(r.Context())
	if err != nil {
		logger.Error("Failed to list songs", logger.ErrorField(err))
		http.Error(w, "Failed to list songs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// GetSongHandler returns a single song by ID.
func (h *APIHandler) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid song ID", http.StatusBadRequest)
		return
	}

	song, err := h.songRepo.GetSongByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get song", logger.Int64("songId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get song", http.StatusInternalServerError)
		return
	}
	if song == nil {
		http.Error(w, "Song not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, song)
}

// AddArtistToSongHandler links an artist to a song. The song is checked
// before the artist, and re-linking an existing pair is a soft no-op.
func (h *APIHandler) AddArtistToSongHandler(w http.ResponseWriter, r *http.Request) {
	var req AddArtistToSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	song, err := h.songRepo.GetSongByID(r.Context(), req.SongID)
	if err != nil {
		logger.Error("Failed to get song", logger.Int64("songId", req.SongID), logger.ErrorField(err))
		http.Error(w, "Failed to get song", http.StatusInternalServerError)
		return
	}
	if song == nil {
		http.Error(w, "Song not found", http.StatusNotFound)
		return
	}

	artist, err := h.artistRepo.GetArtistByID(r.Context(), req.ArtistID)
	if err != nil {
		logger.Error("Failed to get artist", logger.Int64("artistId", req.ArtistID), logger.ErrorField(err))
		http.Error(w, "Failed to get artist", http.StatusInternalServerError)
		return
	}
	if artist == nil {
		http.Error(w, "Artist not found", http.StatusNotFound)
		return
	}

	linked, err := h.songRepo.HasArtist(r.Context(), req.SongID, req.ArtistID)
	if err != nil {
		logger.Error("Failed to check song artist link",
			logger.Int64("songId", req.SongID),
			logger.Int64("artistId", req.ArtistID),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to check song artist link", http.StatusInternalServerError)
		return
	}
	if linked {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Artist already linked to song",
		})
		return
	}

	if err := h.songRepo.AddArtist(r.Context(), req.SongID, req.ArtistID); err != nil {
		logger.Error("Failed to add artist to song",
			logger.Int64("songId", req.SongID),
			logger.Int64("artistId", req.ArtistID),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to add artist to song", http.StatusInternalServerError)
		return
	}

	logger.Info("Artist added to song",
		logger.Int64("songId", req.SongID),
		logger.Int64("artistId", req.ArtistID),
	)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Artist added to song successfully",
	})
}
