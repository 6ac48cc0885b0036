package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// promptVersion tags every interpretation log record so parameter drift
// can be traced back to the instruction template that produced it.
const promptVersion = "v1.0"

const systemPromptTemplate = `You are an expert DJ and music psychologist.
Map the user's vibe to audio target parameters.

Rules:
- Choose 1-2 seed_genres ONLY from this list: %s
- Valence: 0=sad/melancholic, 1=happy/euphoric
- Energy: 0=calm/ambient, 1=intense/aggressive
- Danceability: 0=listening music, 1=club bangers
- Tempo guidance: slow=60-90 BPM, medium=90-120, fast=120-180
- Output JSON with exactly these top-level keys (no nesting):
  {
    "target_valence": float between 0 and 1,
    "target_energy": float between 0 and 1,
    "target_danceability": float between 0 and 1,
    "min_tempo": integer between 40 and 220,
    "max_tempo": integer between 40 and 220,
    "seed_genres": ["genre1","genre2"],
    "reasoning": "short sentence"
  }
- Do not add extra keys. Do not nest fields. Return valid JSON only.`

// maxPromptGenres bounds how many vocabulary entries are embedded in the
// instruction template. Sampling keeps the prompt within budget; a fresh
// sample per attempt is what gives retries genre diversity.
const maxPromptGenres = 50

func buildSystemPrompt(genreSample []string) string {
	return fmt.Sprintf(systemPromptTemplate, strings.Join(genreSample, ", "))
}

// sampleGenres picks up to maxPromptGenres entries without replacement
// and returns them sorted for stable prompt formatting.
func sampleGenres(vocabulary []string, rng *rand.Rand) []string {
	n := maxPromptGenres
	if len(vocabulary) < n {
		n = len(vocabulary)
	}

	shuffled := make([]string, len(vocabulary))
	copy(shuffled, vocabulary)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	sample := shuffled[:n]
	sort.Strings(sample)
	return sample
}
