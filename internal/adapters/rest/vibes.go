package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
	"github.com/ewilliams-labs/vibeflow/internal/core/services"
)

type buildVibeRequest struct {
	Prompt         string `json:"prompt"`
	Limit          int    `json:"limit"`
	CreatePlaylist bool   `json:"create_playlist"`
	Name           string `json:"name"`
}

type buildVibeResponse struct {
	RequestID string                 `json:"request_id"`
	Params    domain.TargetParams    `json:"params"`
	Tracks    []domain.Track         `json:"tracks"`
	Playlist  *domain.PlaylistResult `json:"playlist,omitempty"`
}

// BuildVibe handles POST /vibes: the full pipeline from prompt to tracks
// and, when requested, to a materialized playlist.
func (h *Handler) BuildVibe(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req buildVibeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	resp, err := h.builder.BuildPlaylist(r.Context(), services.VibeRequest{
		Prompt:         req.Prompt,
		Limit:          req.Limit,
		CreatePlaylist: req.CreatePlaylist,
		Name:           req.Name,
	})
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, buildVibeResponse{
		RequestID: requestID,
		Params:    resp.Params,
		Tracks:    resp.Tracks,
		Playlist:  resp.Playlist,
	})
}

// statusForError maps the core error taxonomy to HTTP status codes so
// clients can branch on failure kind.
func statusForError(err error) int {
	var (
		validationErr *domain.ValidationError
		authErr       *ports.AuthError
		rateErr       *ports.RateLimitError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ports.ErrInterpretation):
		return http.StatusBadGateway
	case errors.Is(err, ports.ErrNoResults):
		return http.StatusNotFound
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
