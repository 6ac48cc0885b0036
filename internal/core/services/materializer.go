package services

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

// addItemsBatchSize is the catalog's per-call item limit for playlist
// writes.
const addItemsBatchSize = 100

// Materializer persists an assembled track list as a remote playlist.
// It performs no retries of its own: repeating a partially created
// playlist risks duplicates, so remote errors propagate unchanged.
type Materializer struct {
	catalog ports.Catalog
}

var _ ports.PlaylistMaterializer = (*Materializer)(nil)

// NewMaterializer constructs a materializer over the given catalog.
func NewMaterializer(catalog ports.Catalog) *Materializer {
	return &Materializer{catalog: catalog}
}

// Materialize resolves the acting user, creates the playlist under the
// sanitized name, and attaches the tracks in batches of at most 100,
// preserving input order across batch boundaries.
func (m *Materializer) Materialize(ctx context.Context, name string, tracks []domain.Track) (domain.PlaylistResult, error) {
	user, err := m.catalog.CurrentUser(ctx)
	if err != nil {
		return domain.PlaylistResult{}, err
	}

	playlistName := domain.SanitizePlaylistName(name)
	description := fmt.Sprintf("Generated by Vibeflow | %d tracks", len(tracks))

	handle, err := m.catalog.CreatePlaylist(ctx, user.ID, playlistName, true, description)
	if err != nil {
		return domain.PlaylistResult{}, err
	}

	uris := make([]string, len(tracks))
	for i, t := range tracks {
		uris[i] = t.URI
	}
	for start := 0; start < len(uris); start += addItemsBatchSize {
		end := start + addItemsBatchSize
		if end > len(uris) {
			end = len(uris)
		}
		if err := m.catalog.AddItems(ctx, handle.ID, uris[start:end]); err != nil {
			return domain.PlaylistResult{}, err
		}
	}

	return domain.PlaylistResult{
		PlaylistID:   handle.ID,
		PlaylistURL:  handle.URL,
		PlaylistName: playlistName,
		TrackCount:   len(tracks),
		Tracks:       tracks,
	}, nil
}
