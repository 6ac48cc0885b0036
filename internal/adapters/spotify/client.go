// Package spotify implements the catalog port against the Spotify Web
// API: seed genres, track search, and playlist creation. Authentication
// uses an OAuth2 refresh token; the token source handles renewal.
package spotify

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

const (
	// DefaultBaseURL is the Spotify Web API root.
	DefaultBaseURL = "https://api.spotify.com/v1"

	tokenURL = "https://accounts.spotify.com/api/token"

	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBaseBackoff = 500 * time.Millisecond
)

// Credentials holds the OAuth2 material for the Spotify client.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Client is the HTTP adapter for the Spotify Web API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	logger      *log.Logger
}

var _ ports.Catalog = (*Client)(nil)

// New constructs a client over an already-authenticated HTTP client.
// Used directly by tests; production code goes through NewWithCredentials.
func New(httpClient *http.Client, baseURL string, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBaseBackoff,
		logger:      logger,
	}
}

// NewWithCredentials builds a client whose transport injects and renews
// the OAuth2 access token. Missing credentials fail here, at
// construction, not at first use.
func NewWithCredentials(ctx context.Context, creds Credentials, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("spotify adapter: client id and secret are required")
	}
	if creds.RefreshToken == "" {
		return nil, fmt.Errorf("spotify adapter: refresh token is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}

	// The token source refreshes through this base client, so the
	// per-call timeout applies to token renewal as well.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
	source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	httpClient := oauth2.NewClient(ctx, source)
	httpClient.Timeout = timeout

	return New(httpClient, DefaultBaseURL, logger), nil
}
