package server

import (
	"encoding/json"
	"net/http"

	"tunedex/logger"
	"tunedex/model"
)

// CreateArtistRequest is the create artist request body.
type CreateArtistRequest struct {
	Name    string  `json:"name"`
	Country *string `json:"country"`
}

// CreateArtistHandler creates a new artist.
func (h *APIHandler) CreateArtistHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	artist := &model.Artist{
		Name:    req.Name,
		Country: req.Country,
	}

	id, err := h.artistRepo.CreateArtist(r.Context(), artist)
	if err != nil {
		logger.Error("Failed to create artist",
			logger.String("name", req.Name),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to create artist", http.StatusInternalServerError)
		return
	}

	created, err := h.artistRepo.GetArtistByID(r.Context(), id)
	if err != nil || created == nil {
		logger.Error("Failed to load created artist", logger.Int64("artistId", id), logger.ErrorField(err))
		http.Error(w, "Failed to load created artist", http.StatusInternalServerError)
		return
	}

	logger.Info("Artist created",
		logger.Int64("artistId", id),
		logger.String("name", created.Name),
	)
	writeJSON(w, http.StatusCreated, created)
}

// GetArtistsHandler returns every artist.
func (h *APIHandler) GetArtistsHandler(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artistRepo.GetAllArtists(r.Context())
	if err != nil {
		logger.Error("Failed to list artists", logger.ErrorField(err))
		http.Error(w, "Failed to list artists", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, artists)
}

// GetArtistHandler returns a single artist by ID.
func (h *APIHandler) GetArtistHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid artist ID", http.StatusBadRequest)
		return
	}

	artist, err := h.artistRepo.GetArtistByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get artist", logger.Int64("artistId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get artist", http.StatusInternalServerError)
		return
	}
	if artist == nil {
		http.Error(w, "Artist not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, artist)
}
