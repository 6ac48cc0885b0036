package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

// CurrentUser resolves the acting user identity.
func (c *Client) CurrentUser(ctx context.Context) (ports.CatalogUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return ports.CatalogUser{}, fmt.Errorf("spotify adapter: build user request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return ports.CatalogUser{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.CatalogUser{}, fmt.Errorf("spotify adapter: user status %d", resp.StatusCode)
	}

	var body userObject
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.CatalogUser{}, fmt.Errorf("spotify adapter: decode user: %w", err)
	}
	return ports.CatalogUser{ID: body.ID, DisplayName: body.DisplayName}, nil
}
