package services

import (
	"context"
	"fmt"
	"log"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

const (
	// maxSearchQueries caps remote calls per interpretation, trading
	// recall for latency and quota.
	maxSearchQueries = 2

	// maxQueryGenres bounds genre-derived queries. Seed genres are
	// already capped at two, so this is a safety bound.
	maxQueryGenres = 3

	searchResultCap = 50
)

// Assembler turns target parameters into a bounded, deduplicated track
// list by issuing heuristic search queries against the catalog.
type Assembler struct {
	catalog ports.Catalog
	logger  *log.Logger
}

var _ ports.TrackAssembler = (*Assembler)(nil)

// NewAssembler constructs an assembler over the given catalog.
func NewAssembler(catalog ports.Catalog, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{catalog: catalog, logger: logger}
}

// Assemble issues the derived queries in order and accumulates unique
// tracks until limit is reached. A single query failure is logged and
// skipped; only zero tracks across all queries is an error.
func (a *Assembler) Assemble(ctx context.Context, params domain.TargetParams, limit int) ([]domain.Track, error) {
	queries := buildQueries(params)
	a.logger.Printf("INFO assembler: searching with %d queries for genres %v", len(queries), params.SeedGenres)

	perQuery := limit * 3
	if perQuery > searchResultCap {
		perQuery = searchResultCap
	}

	list := domain.NewTrackList(limit)
	for _, query := range queries {
		if list.Full() {
			break
		}

		results, err := a.catalog.Search(ctx, query, perQuery)
		if err != nil {
			a.logger.Printf("WARN assembler: search query %q failed: %v", query, err)
			continue
		}

		for _, track := range results {
			list.Add(track)
			if list.Full() {
				break
			}
		}
	}

	if list.Len() == 0 {
		return nil, ports.ErrNoResults
	}

	a.logger.Printf("INFO assembler: collected %d tracks", list.Len())
	return list.Tracks(), nil
}

// buildQueries derives the search plan: one query per seed genre, then a
// mood keyword query when valence leaves the neutral band, then an
// intensity keyword query when energy does. The neutral band [0.3, 0.7]
// contributes no extra query. The combined list is truncated to
// maxSearchQueries entries.
func buildQueries(params domain.TargetParams) []string {
	var queries []string

	genres := params.SeedGenres
	if len(genres) > maxQueryGenres {
		genres = genres[:maxQueryGenres]
	}
	for _, genre := range genres {
		queries = append(queries, fmt.Sprintf("genre:%s", genre))
	}

	if params.TargetValence > 0.7 {
		queries = append(queries, "happy OR upbeat OR joyful")
	} else if params.TargetValence < 0.3 {
		queries = append(queries, "sad OR melancholy OR dark")
	}

	if params.TargetEnergy > 0.7 {
		queries = append(queries, "energetic OR intense")
	} else if params.TargetEnergy < 0.3 {
		queries = append(queries, "calm OR chill OR ambient")
	}

	if len(queries) > maxSearchQueries {
		queries = queries[:maxSearchQueries]
	}
	return queries
}
