package services

import (
	"context"
	"fmt"
	"log"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

const (
	promptMinLen = 5
	promptMaxLen = 500

	limitFloor   = 5
	limitCeil    = 50
	defaultLimit = 20
)

// VibeRequest is a validated pipeline request. EnergyOverride and
// ValenceOverride, when set, replace the interpreted targets before
// assembly. DryRun suppresses materialization even when CreatePlaylist
// is set, so the would-be playlist can be previewed without writes.
type VibeRequest struct {
	Prompt          string
	Limit           int
	CreatePlaylist  bool
	DryRun          bool
	Name            string
	EnergyOverride  *float64
	ValenceOverride *float64
}

// VibeResponse carries the pipeline output. Playlist is nil unless
// materialization was requested.
type VibeResponse struct {
	Params   domain.TargetParams    `json:"params"`
	Tracks   []domain.Track         `json:"tracks"`
	Playlist *domain.PlaylistResult `json:"playlist,omitempty"`
}

// Orchestrator runs the pipeline stages in order: vocabulary,
// interpretation, assembly, and optional materialization plus history
// persistence.
type Orchestrator struct {
	genres       ports.VocabularySource
	interpreter  ports.VibeInterpreter
	assembler    ports.TrackAssembler
	materializer ports.PlaylistMaterializer
	history      ports.HistoryRepository
	logger       *log.Logger
}

// NewOrchestrator wires the pipeline stages together. history may be nil
// when persistence is not configured.
func NewOrchestrator(
	genres ports.VocabularySource,
	interpreter ports.VibeInterpreter,
	assembler ports.TrackAssembler,
	materializer ports.PlaylistMaterializer,
	history ports.HistoryRepository,
	logger *log.Logger,
) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		genres:       genres,
		interpreter:  interpreter,
		assembler:    assembler,
		materializer: materializer,
		history:      history,
		logger:       logger,
	}
}

// BuildPlaylist runs the full pipeline for one request.
func (o *Orchestrator) BuildPlaylist(ctx context.Context, req VibeRequest) (VibeResponse, error) {
	if err := validateRequest(&req); err != nil {
		return VibeResponse{}, err
	}

	vocabulary := o.genres.Vocabulary(ctx)

	params, err := o.interpreter.Interpret(ctx, req.Prompt, vocabulary)
	if err != nil {
		return VibeResponse{}, fmt.Errorf("service: interpret vibe: %w", err)
	}

	if req.EnergyOverride != nil {
		params.TargetEnergy = *req.EnergyOverride
	}
	if req.ValenceOverride != nil {
		params.TargetValence = *req.ValenceOverride
	}

	tracks, err := o.assembler.Assemble(ctx, params, req.Limit)
	if err != nil {
		return VibeResponse{}, fmt.Errorf("service: assemble tracks: %w", err)
	}

	resp := VibeResponse{Params: params, Tracks: tracks}
	if !req.CreatePlaylist || req.DryRun {
		return resp, nil
	}

	name := req.Name
	if name == "" {
		name = req.Prompt
	}
	result, err := o.materializer.Materialize(ctx, name, tracks)
	if err != nil {
		return VibeResponse{}, err
	}
	resp.Playlist = &result

	// The playlist already exists remotely at this point, so a failed
	// history write is degradation, not failure.
	if o.history != nil {
		if err := o.history.Save(ctx, result); err != nil {
			o.logger.Printf("WARN orchestrator: failed to record playlist %s: %v", result.PlaylistID, err)
		}
	}

	return resp, nil
}

func validateRequest(req *VibeRequest) error {
	if n := len(req.Prompt); n < promptMinLen || n > promptMaxLen {
		return &domain.ValidationError{
			Field:  "prompt",
			Reason: fmt.Sprintf("length %d outside [%d, %d]", n, promptMinLen, promptMaxLen),
		}
	}
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}
	if req.Limit < limitFloor || req.Limit > limitCeil {
		return &domain.ValidationError{
			Field:  "limit",
			Reason: fmt.Sprintf("%d outside [%d, %d]", req.Limit, limitFloor, limitCeil),
		}
	}
	if err := validateOverride("energy_override", req.EnergyOverride); err != nil {
		return err
	}
	if err := validateOverride("valence_override", req.ValenceOverride); err != nil {
		return err
	}
	return nil
}

func validateOverride(field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return &domain.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%.2f outside [0, 1]", *v),
		}
	}
	return nil
}
