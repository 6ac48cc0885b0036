package spotify

import "github.com/ewilliams-labs/vibeflow/internal/core/domain"

// trackObject is the Spotify API wire representation of a track.
type trackObject struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	URI        string         `json:"uri"`
	PreviewURL string         `json:"preview_url"`
	DurationMs int            `json:"duration_ms"`
	Artists    []artistObject `json:"artists"`
}

type artistObject struct {
	Name string `json:"name"`
}

// toDomain normalizes a wire track to the domain model.
func (t trackObject) toDomain() domain.Track {
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}
	return domain.Track{
		ID:         t.ID,
		Name:       t.Name,
		Artists:    artists,
		URI:        t.URI,
		PreviewURL: t.PreviewURL,
		DurationMs: t.DurationMs,
	}
}

type searchResponse struct {
	Tracks struct {
		Items []trackObject `json:"items"`
	} `json:"tracks"`
}

type genreSeedsResponse struct {
	Genres []string `json:"genres"`
}

type userObject struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Public      bool   `json:"public"`
	Description string `json:"description"`
}

type playlistObject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type addItemsRequest struct {
	URIs []string `json:"uris"`
}
