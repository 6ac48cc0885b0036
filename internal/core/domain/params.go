package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports a target-parameter payload that violates the
// schema. The interpreter treats it like a transient failure and retries
// with a fresh round-trip.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TargetParams is the validated audio descriptor derived from a vibe
// prompt. Instances are built exclusively through ParseTargetParams and
// are immutable afterwards.
type TargetParams struct {
	TargetValence      float64  `json:"target_valence"`
	TargetEnergy       float64  `json:"target_energy"`
	TargetDanceability float64  `json:"target_danceability"`
	MinTempo           int      `json:"min_tempo"`
	MaxTempo           int      `json:"max_tempo"`
	SeedGenres         []string `json:"seed_genres"`
	Reasoning          string   `json:"reasoning"`
}

const (
	tempoFloor      = 40
	tempoCeil       = 220
	reasoningMinLen = 8
	reasoningMaxLen = 240
	maxSeedGenres   = 2
)

// ParseTargetParams decodes a raw LLM response into TargetParams and
// validates it in one step. Genre membership is checked against the full
// vocabulary, not whatever sample was shown to the model. A failed parse
// discards the instance entirely; values are never clamped.
func ParseTargetParams(data []byte, vocabulary []string) (TargetParams, error) {
	var p TargetParams
	if err := json.Unmarshal(data, &p); err != nil {
		return TargetParams{}, &ValidationError{Field: "payload", Reason: err.Error()}
	}

	if err := checkUnitRange("target_valence", p.TargetValence); err != nil {
		return TargetParams{}, err
	}
	if err := checkUnitRange("target_energy", p.TargetEnergy); err != nil {
		return TargetParams{}, err
	}
	if err := checkUnitRange("target_danceability", p.TargetDanceability); err != nil {
		return TargetParams{}, err
	}

	if p.MinTempo < tempoFloor || p.MinTempo > tempoCeil {
		return TargetParams{}, &ValidationError{
			Field:  "min_tempo",
			Reason: fmt.Sprintf("%d outside [%d, %d]", p.MinTempo, tempoFloor, tempoCeil),
		}
	}
	if p.MaxTempo < tempoFloor || p.MaxTempo > tempoCeil {
		return TargetParams{}, &ValidationError{
			Field:  "max_tempo",
			Reason: fmt.Sprintf("%d outside [%d, %d]", p.MaxTempo, tempoFloor, tempoCeil),
		}
	}
	if p.MaxTempo < p.MinTempo {
		return TargetParams{}, &ValidationError{
			Field:  "max_tempo",
			Reason: fmt.Sprintf("%d is below min_tempo %d", p.MaxTempo, p.MinTempo),
		}
	}

	genres, err := normalizeSeedGenres(p.SeedGenres, vocabulary)
	if err != nil {
		return TargetParams{}, err
	}
	p.SeedGenres = genres

	if n := len(p.Reasoning); n < reasoningMinLen || n > reasoningMaxLen {
		return TargetParams{}, &ValidationError{
			Field:  "reasoning",
			Reason: fmt.Sprintf("length %d outside [%d, %d]", n, reasoningMinLen, reasoningMaxLen),
		}
	}

	return p, nil
}

func checkUnitRange(field string, v float64) error {
	if v < 0.0 || v > 1.0 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%v outside [0, 1]", v)}
	}
	return nil
}

// normalizeSeedGenres lowercases, trims, drops empties, and deduplicates
// while preserving first-seen order, then enforces the 1-2 bound and
// vocabulary membership.
func normalizeSeedGenres(raw []string, vocabulary []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	genres := make([]string, 0, len(raw))
	for _, g := range raw {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}

	if len(genres) == 0 {
		return nil, &ValidationError{Field: "seed_genres", Reason: "at least one genre required"}
	}
	if len(genres) > maxSeedGenres {
		return nil, &ValidationError{
			Field:  "seed_genres",
			Reason: fmt.Sprintf("%d genres, at most %d allowed", len(genres), maxSeedGenres),
		}
	}

	valid := make(map[string]struct{}, len(vocabulary))
	for _, v := range vocabulary {
		valid[v] = struct{}{}
	}
	for _, g := range genres {
		if _, ok := valid[g]; !ok {
			return nil, &ValidationError{
				Field:  "seed_genres",
				Reason: fmt.Sprintf("%q is not in the catalog vocabulary", g),
			}
		}
	}

	return genres, nil
}
