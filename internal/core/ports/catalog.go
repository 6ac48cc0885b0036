package ports

import (
	"context"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
)

// CatalogUser identifies the acting user on the catalog service.
type CatalogUser struct {
	ID          string
	DisplayName string
}

// PlaylistHandle references a freshly created, still-empty playlist.
type PlaylistHandle struct {
	ID  string
	URL string
}

// Catalog is the capability surface the pipeline needs from the remote
// music service.
type Catalog interface {
	// ListSeedGenres returns the catalog's seed-genre vocabulary.
	ListSeedGenres(ctx context.Context) ([]string, error)

	// Search issues a free-text track search and returns up to limit
	// normalized results in the catalog's own order.
	Search(ctx context.Context, query string, limit int) ([]domain.Track, error)

	// CurrentUser resolves the acting user identity.
	CurrentUser(ctx context.Context) (CatalogUser, error)

	// CreatePlaylist creates an empty playlist owned by the user.
	CreatePlaylist(ctx context.Context, userID, name string, public bool, description string) (PlaylistHandle, error)

	// AddItems attaches track URIs to a playlist in a single write call.
	// Callers must respect the service's per-call item limit.
	AddItems(ctx context.Context, playlistID string, uris []string) error
}
