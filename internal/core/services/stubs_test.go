package services

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

// discardLogger keeps test output quiet.
var discardLogger = log.New(io.Discard, "", 0)

// noSleep replaces backoff delays in tests.
func noSleep(context.Context, time.Duration) error { return nil }

// stubCatalog is a scriptable ports.Catalog.
type stubCatalog struct {
	genres      []string
	genresErr   error
	genresCalls int

	searchFn    func(query string, limit int) ([]domain.Track, error)
	searchCalls []string

	user    ports.CatalogUser
	userErr error

	handle    ports.PlaylistHandle
	createErr error

	createdName string
	createdDesc string

	addBatches [][]string
	addErr     error
}

var _ ports.Catalog = (*stubCatalog)(nil)

func (s *stubCatalog) ListSeedGenres(ctx context.Context) ([]string, error) {
	s.genresCalls++
	if s.genresErr != nil {
		return nil, s.genresErr
	}
	return s.genres, nil
}

func (s *stubCatalog) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	s.searchCalls = append(s.searchCalls, query)
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(query, limit)
}

func (s *stubCatalog) CurrentUser(ctx context.Context) (ports.CatalogUser, error) {
	if s.userErr != nil {
		return ports.CatalogUser{}, s.userErr
	}
	return s.user, nil
}

func (s *stubCatalog) CreatePlaylist(ctx context.Context, userID, name string, public bool, description string) (ports.PlaylistHandle, error) {
	s.createdName = name
	s.createdDesc = description
	if s.createErr != nil {
		return ports.PlaylistHandle{}, s.createErr
	}
	return s.handle, nil
}

func (s *stubCatalog) AddItems(ctx context.Context, playlistID string, uris []string) error {
	batch := make([]string, len(uris))
	copy(batch, uris)
	s.addBatches = append(s.addBatches, batch)
	return s.addErr
}

// stubBackend returns scripted responses in sequence.
type stubBackend struct {
	responses []string
	errs      []error
	calls     int
	model     string
}

var _ ports.VibeBackend = (*stubBackend)(nil)

func (s *stubBackend) Complete(ctx context.Context, system, user string) (string, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", context.Canceled
}

func (s *stubBackend) Model() string {
	if s.model == "" {
		return "stub-model"
	}
	return s.model
}
