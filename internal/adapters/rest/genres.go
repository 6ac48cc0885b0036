package rest

import "net/http"

type genresResponse struct {
	Genres []string `json:"genres"`
}

// ListGenres handles GET /genres and returns the current vocabulary.
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, genresResponse{Genres: h.genres.Vocabulary(r.Context())})
}
