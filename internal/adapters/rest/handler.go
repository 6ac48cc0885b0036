// Package rest exposes the vibe pipeline over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
	"github.com/ewilliams-labs/vibeflow/internal/core/services"
)

// PlaylistBuilder is the slice of the orchestrator the HTTP layer needs.
type PlaylistBuilder interface {
	BuildPlaylist(ctx context.Context, req services.VibeRequest) (services.VibeResponse, error)
}

// Handler manages the HTTP interface for the application.
type Handler struct {
	builder PlaylistBuilder
	genres  ports.VocabularySource
	history ports.HistoryRepository
	router  *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes. history
// may be nil when persistence is not configured.
func NewHandler(builder PlaylistBuilder, genres ports.VocabularySource, history ports.HistoryRepository) *Handler {
	h := &Handler{
		builder: builder,
		genres:  genres,
		history: history,
		router:  http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.HandleFunc("GET /genres", h.ListGenres)
	h.router.HandleFunc("POST /vibes", h.BuildVibe)
	h.router.HandleFunc("GET /playlists/{id}", h.GetPlaylist)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func isJSONContentType(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "application/json")
}
