package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

// CreatePlaylist creates an empty playlist owned by the given user.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name string, public bool, description string) (ports.PlaylistHandle, error) {
	payload := createPlaylistRequest{Name: name, Public: public, Description: description}
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.PlaylistHandle{}, fmt.Errorf("spotify adapter: marshal playlist request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/playlists", c.baseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.PlaylistHandle{}, fmt.Errorf("spotify adapter: build playlist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return ports.PlaylistHandle{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ports.PlaylistHandle{}, fmt.Errorf("spotify adapter: create playlist status %d", resp.StatusCode)
	}

	var created playlistObject
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return ports.PlaylistHandle{}, fmt.Errorf("spotify adapter: decode playlist: %w", err)
	}
	return ports.PlaylistHandle{ID: created.ID, URL: created.ExternalURLs.Spotify}, nil
}

// AddItems attaches track URIs to a playlist in one write call. Callers
// batch to at most 100 URIs per call, the API's item limit.
func (c *Client) AddItems(ctx context.Context, playlistID string, uris []string) error {
	body, err := json.Marshal(addItemsRequest{URIs: uris})
	if err != nil {
		return fmt.Errorf("spotify adapter: marshal add items request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/playlists/%s/tracks", c.baseURL, url.PathEscape(playlistID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("spotify adapter: build add items request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("spotify adapter: add items status %d", resp.StatusCode)
	}
	return nil
}
