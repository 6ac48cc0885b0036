package ports

import (
	"context"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
)

// VocabularySource supplies the seed-genre vocabulary. Implementations
// must always return a usable list; degradation to a static fallback is
// handled internally and never propagated.
type VocabularySource interface {
	Vocabulary(ctx context.Context) []string
}

// VibeInterpreter turns a free-text prompt into validated target
// parameters, or fails with *InterpretationError once retries are spent.
type VibeInterpreter interface {
	Interpret(ctx context.Context, prompt string, vocabulary []string) (domain.TargetParams, error)
}

// TrackAssembler turns target parameters into a bounded, deduplicated
// track list, or fails with ErrNoResults.
type TrackAssembler interface {
	Assemble(ctx context.Context, params domain.TargetParams, limit int) ([]domain.Track, error)
}

// PlaylistMaterializer persists an ordered track list as a remote
// playlist. Catalog auth and rate-limit errors propagate unchanged.
type PlaylistMaterializer interface {
	Materialize(ctx context.Context, name string, tracks []domain.Track) (domain.PlaylistResult, error)
}
