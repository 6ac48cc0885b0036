package domain

import "errors"

// ErrNotFound indicates a stored playlist does not exist.
var ErrNotFound = errors.New("domain: not found")

// PlaylistResult describes a playlist created on the catalog service.
// It is built once, after every batched write succeeded, and never
// mutated. TrackCount is the number of tracks requested to be added; the
// remote playlist is not re-read for verification.
type PlaylistResult struct {
	PlaylistID   string  `json:"playlist_id"`
	PlaylistURL  string  `json:"playlist_url"`
	PlaylistName string  `json:"playlist_name"`
	TrackCount   int     `json:"track_count"`
	Tracks       []Track `json:"tracks"`
}
