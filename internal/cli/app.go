package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/ewilliams-labs/vibeflow/internal/adapters/groq"
	"github.com/ewilliams-labs/vibeflow/internal/adapters/ollama"
	"github.com/ewilliams-labs/vibeflow/internal/adapters/spotify"
	"github.com/ewilliams-labs/vibeflow/internal/adapters/sqlite"
	"github.com/ewilliams-labs/vibeflow/internal/config"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
	"github.com/ewilliams-labs/vibeflow/internal/core/services"
)

// app holds the assembled pipeline and the resources it owns.
type app struct {
	orchestrator *services.Orchestrator
	genres       ports.VocabularySource
	history      ports.HistoryRepository

	closers []func() error
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Printf("WARN cli: close: %v", err)
		}
	}
}

// newApp performs the dependency injection: driven adapters first, then
// the core services over them.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	logger := log.Default()

	catalog, err := spotify.NewWithCredentials(ctx, spotify.Credentials{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		RefreshToken: cfg.Spotify.RefreshToken,
	}, cfg.Spotify.Timeout(), logger)
	if err != nil {
		return nil, fmt.Errorf("spotify client: %w", err)
	}

	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{}

	var history ports.HistoryRepository
	if cfg.DBPath != "" {
		db, err := sqlite.NewAdapter(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open history database: %w", err)
		}
		history = db
		a.closers = append(a.closers, db.Close)
	}

	genres := services.NewGenreCache(catalog, cfg.GenreCacheTTL(), logger)
	interpreter := services.NewInterpreter(backend, logger)
	interpreter.SetAttempts(cfg.LLM.MaxRetries)
	assembler := services.NewAssembler(catalog, logger)
	materializer := services.NewMaterializer(catalog)

	a.orchestrator = services.NewOrchestrator(genres, interpreter, assembler, materializer, history, logger)
	a.genres = genres
	a.history = history
	return a, nil
}

func newBackend(cfg config.Config) (ports.VibeBackend, error) {
	switch cfg.LLM.Provider {
	case config.ProviderHosted:
		client, err := groq.NewClient("", cfg.LLM.GroqAPIKey, "", cfg.LLM.Timeout())
		if err != nil {
			return nil, fmt.Errorf("groq client: %w", err)
		}
		return client, nil
	case config.ProviderLocal:
		return ollama.NewClient(cfg.LLM.OllamaBaseURL, cfg.LLM.OllamaModel, cfg.LLM.Timeout()), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
