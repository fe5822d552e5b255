package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tunedex/config"
	"tunedex/db"
	"tunedex/logger"
	"tunedex/model"
	"tunedex/repository"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Connect to the database
	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.DB.Close()

	// GORM connection drives schema migration only
	if err := db.ConnectGormDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database with GORM: %v", err)
	}
	defer db.CloseGormDB()

	if err := db.AutoMigrateModels(
		&model.User{},
		&model.Playlist{},
		&model.Song{},
		&model.Artist{},
		&model.PlaylistSong{},
		&model.SongArtist{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repository.NewMySQLUserRepository(db.DB)
	playlistRepo := repository.NewMySQLPlaylistRepository(db.DB)
	songRepo := repository.NewMySQLSongRepository(db.DB)
	artistRepo := repository.NewMySQLArtistRepository(db.DB)

	apiHandler := NewAPIHandler(userRepo, playlistRepo, songRepo, artistRepo)
	server.Handler = newRouter(apiHandler)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on :%s...", cfg.ServerPort)
		log.Println("Manage the catalog via the /api/users, /api/playlists, /api/songs and /api/artists endpoints")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// newRouter builds the API router with all endpoints and middleware.
func newRouter(apiHandler *APIHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(requestLogMiddleware)

	// User endpoints
	router.HandleFunc("/api/users", apiHandler.CreateUserHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/users", apiHandler.GetUsersHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", apiHandler.GetUserHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", apiHandler.DeleteUserHandler).Methods(http.MethodDelete)

	// Playlist endpoints
	router.HandleFunc("/api/playlists", apiHandler.CreatePlaylistHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/playlists", apiHandler.GetPlaylistsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists/{id}", apiHandler.GetPlaylistHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists/{id}/songs", apiHandler.GetPlaylistSongsHandler).Methods(http.MethodGet)

	// Song endpoints
	router.HandleFunc("/api/songs", apiHandler.CreateSongHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/songs", apiHandler.GetSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/songs/{id}", apiHandler.GetSongHandler).Methods(http.MethodGet)

	// Artist endpoints
	router.HandleFunc("/api/artists", apiHandler.CreateArtistHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/artists", apiHandler.GetArtistsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/artists/{id}", apiHandler.GetArtistHandler).Methods(http.MethodGet)

	// Association endpoints
	router.HandleFunc("/api/playlist-songs", apiHandler.AddSongToPlaylistHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/song-artists", apiHandler.AddArtistToSongHandler).Methods(http.MethodPost)

	return router
}

// corsMiddleware allows any origin to consume the API, the dashboard included.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// requestLogMiddleware tags every request with an ID and writes an access log entry.
func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.Info("Request handled",
			logger.String("requestId", requestID),
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", rec.status),
			logger.Duration("elapsed", time.Since(start)),
		)
	})
}
