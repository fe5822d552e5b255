package server

import (
	"encoding/json"
	"net/http"

	"tunedex/logger"
	"tunedex/model"
)

// CreateUserRequest is the create user request body.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserHandler creates a new user.
func (h *APIHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Email == "" {
		http.Error(w, "Username and email are required", http.StatusBadRequest)
		return
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
	}

	id, err := h.userRepo.CreateUser(r.Context(), user)
	if err != nil {
		if isDuplicateEntry(err) {
			http.Error(w, "Email already exists", http.StatusConflict)
			return
		}
		logger.Error("Failed to create user",
			logger.String("email", req.Email),
			logger.ErrorField(err),
		)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	created, err := h.userRepo.GetUserByID(r.Context(), id)
	if err != nil || created == nil {
		logger.Error("Failed to load created user", logger.Int64("userId", id), logger.ErrorField(err))
		http.Error(w, "Failed to load created user", http.StatusInternalServerError)
		return
	}

	logger.Info("User created",
		logger.Int64("userId", id),
		logger.String("username", created.Username),
	)
	writeJSON(w, http.StatusCreated, created)
}

// GetUsersHandler returns every user.
func (h *APIHandler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAllUsers(r.Context())
	if err != nil {
		logger.Error("Failed to list users", logger.ErrorField(err))
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUserHandler returns a single user by ID.
func (h *APIHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetUserByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get user", logger.Int64("userId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// DeleteUserHandler deletes a user and cascades to the playlists they own.
// Songs and artists referenced by those playlists are shared and survive.
func (h *APIHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetUserByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to get user", logger.Int64("userId", id), logger.ErrorField(err))
		http.Error(w, "Failed to get user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if err := h.userRepo.DeleteUser(r.Context(), id); err != nil {
		logger.Error("Failed to delete user", logger.Int64("userId", id), logger.ErrorField(err))
		http.Error(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}

	logger.Info("User deleted", logger.Int64("userId", id))
	w.WriteHeader(http.StatusNoContent)
}
