package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"tunedex/logger"
	"tunedex/repository"

	"github.com/gorilla/mux"
)

// APIHandler handles all API requests.
type APIHandler struct {
	userRepo     repository.UserRepository
	playlistRepo repository.PlaylistRepository
	songRepo     repository.SongRepository
	artistRepo   repository.ArtistRepository
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	userRepo repository.UserRepository,
	playlistRepo repository.PlaylistRepository,
	songRepo repository.SongRepository,
	artistRepo repository.ArtistRepository,
) *APIHandler {
	return &APIHandler{
		userRepo:     userRepo,
		playlistRepo: playlistRepo,
		songRepo:     songRepo,
		artistRepo:   artistRepo,
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

// parsePathID extracts an int64 path variable from the request.
func parsePathID(r *http.Request, key string) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars[key], 10, 64)
}

// isDuplicateEntry reports whether err is a store uniqueness violation.
// MySQL reports "Duplicate entry", SQLite "UNIQUE constraint failed".
func isDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
