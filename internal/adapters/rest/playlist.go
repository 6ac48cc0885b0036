package rest

import (
	"errors"
	"net/http"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
)

// GetPlaylist handles GET /playlists/{id} from the local history store.
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotImplemented, "playlist history not configured")
		return
	}

	playlistID := r.PathValue("id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "playlist id is required")
		return
	}

	result, err := h.history.GetByID(r.Context(), playlistID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "playlist not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
