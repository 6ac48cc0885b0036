package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

const (
	interpretAttempts    = 3
	interpretBaseBackoff = 1 * time.Second
	interpretMaxBackoff  = 8 * time.Second
)

// Interpreter converts a vibe prompt into validated target parameters via
// a language-model backend. The backend is fixed at construction.
type Interpreter struct {
	backend ports.VibeBackend
	logger  *log.Logger

	attempts int
	sleep    func(context.Context, time.Duration) error
	rng      *rand.Rand
}

var _ ports.VibeInterpreter = (*Interpreter)(nil)

// NewInterpreter constructs an interpreter over the given backend.
func NewInterpreter(backend ports.VibeBackend, logger *log.Logger) *Interpreter {
	if logger == nil {
		logger = log.Default()
	}
	return &Interpreter{
		backend:  backend,
		logger:   logger,
		attempts: interpretAttempts,
		sleep:    sleepWithContext,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetAttempts overrides the default retry budget. Values below 1 are
// ignored.
func (i *Interpreter) SetAttempts(n int) {
	if n >= 1 {
		i.attempts = n
	}
}

// Interpret runs the full round-trip (prompt build, completion, parse,
// validate) up to three times with exponential backoff. Backend errors,
// unparseable output, and validation failures all trigger a fresh
// round-trip; only exhaustion surfaces, as *ports.InterpretationError.
func (i *Interpreter) Interpret(ctx context.Context, prompt string, vocabulary []string) (domain.TargetParams, error) {
	var lastErr error
	for attempt := 0; attempt < i.attempts; attempt++ {
		params, err := i.roundTrip(ctx, prompt, vocabulary)
		if err == nil {
			return params, nil
		}
		lastErr = err
		i.logger.Printf("WARN interpreter: attempt %d/%d failed: %v", attempt+1, i.attempts, err)

		if attempt == i.attempts-1 {
			break
		}

		backoff := interpretBaseBackoff << attempt
		if backoff > interpretMaxBackoff {
			backoff = interpretMaxBackoff
		}
		if serr := i.sleep(ctx, backoff); serr != nil {
			lastErr = serr
			break
		}
	}
	return domain.TargetParams{}, &ports.InterpretationError{Attempts: i.attempts, Cause: lastErr}
}

// roundTrip performs one complete interpretation attempt. Latency is
// measured over this attempt alone, so the success record reflects the
// winning round-trip.
func (i *Interpreter) roundTrip(ctx context.Context, prompt string, vocabulary []string) (domain.TargetParams, error) {
	system := buildSystemPrompt(sampleGenres(vocabulary, i.rng))

	start := time.Now()
	raw, err := i.backend.Complete(ctx, system, prompt)
	if err != nil {
		return domain.TargetParams{}, err
	}

	params, err := domain.ParseTargetParams([]byte(raw), vocabulary)
	if err != nil {
		return domain.TargetParams{}, err
	}

	i.logger.Printf("INFO interpreter: interpretation complete latency_ms=%d model=%s prompt_version=%s",
		time.Since(start).Milliseconds(), i.backend.Model(), promptVersion)
	return params, nil
}
