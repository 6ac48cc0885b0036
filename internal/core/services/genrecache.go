package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

const (
	genreFetchAttempts    = 3
	genreFetchBaseBackoff = 2 * time.Second
	genreFetchMaxBackoff  = 10 * time.Second
)

// genreEntry is a fetched vocabulary plus its fetch instant. Entries are
// superseded on refresh, never mutated.
type genreEntry struct {
	data      []string
	fetchedAt time.Time
}

// GenreCache serves the catalog's seed-genre vocabulary with a TTL and a
// static fallback. It never propagates a fetch failure: the pipeline must
// not stall on vocabulary unavailability.
type GenreCache struct {
	catalog ports.Catalog
	ttl     time.Duration
	logger  *log.Logger

	now   func() time.Time
	sleep func(context.Context, time.Duration) error

	entry *genreEntry
}

var _ ports.VocabularySource = (*GenreCache)(nil)

// NewGenreCache constructs a cache over the given catalog.
func NewGenreCache(catalog ports.Catalog, ttl time.Duration, logger *log.Logger) *GenreCache {
	if logger == nil {
		logger = log.Default()
	}
	return &GenreCache{
		catalog: catalog,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		sleep:   sleepWithContext,
	}
}

// Vocabulary returns the cached vocabulary while it is fresh, refreshes
// it from the catalog otherwise, and falls back to the embedded list when
// the catalog stays unreachable.
func (c *GenreCache) Vocabulary(ctx context.Context) []string {
	if c.entry != nil && c.now().Sub(c.entry.fetchedAt) < c.ttl {
		return c.entry.data
	}

	genres, err := c.fetchWithRetry(ctx)
	if err != nil {
		c.logger.Printf("WARN genre cache: falling back to static genre list: %v", err)
		return fallbackGenres
	}

	c.entry = &genreEntry{data: genres, fetchedAt: c.now()}
	c.logger.Printf("INFO genre cache: fetched %d genres from catalog", len(genres))
	return genres
}

func (c *GenreCache) fetchWithRetry(ctx context.Context) ([]string, error) {
	var lastErr error
	for attempt := 0; attempt < genreFetchAttempts; attempt++ {
		genres, err := c.catalog.ListSeedGenres(ctx)
		if err == nil {
			return genres, nil
		}
		lastErr = err

		if attempt == genreFetchAttempts-1 {
			break
		}

		backoff := genreFetchBaseBackoff << attempt
		if backoff > genreFetchMaxBackoff {
			backoff = genreFetchMaxBackoff
		}
		if serr := c.sleep(ctx, backoff); serr != nil {
			return nil, serr
		}
	}
	return nil, fmt.Errorf("genre fetch failed after %d attempts: %w", genreFetchAttempts, lastErr)
}

// sleepWithContext waits for the delay or aborts when the context ends.
func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
