package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListSeedGenres fetches the catalog's seed-genre vocabulary.
func (c *Client) ListSeedGenres(ctx context.Context) ([]string, error) {
	url := c.baseURL + "/recommendations/available-genre-seeds"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: build genres request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify adapter: genres status %d", resp.StatusCode)
	}

	var body genreSeedsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("spotify adapter: decode genres: %w", err)
	}
	return body.Genres, nil
}
