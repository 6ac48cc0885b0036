package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open adapter: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func sampleResult(id string, trackCount int) domain.PlaylistResult {
	tracks := make([]domain.Track, trackCount)
	for i := range tracks {
		tracks[i] = domain.Track{
			ID:         id + "-t" + string(rune('a'+i)),
			Name:       "Track " + string(rune('A'+i)),
			Artists:    []string{"Artist One", "Artist Two"},
			URI:        "spotify:track:" + id + string(rune('a'+i)),
			PreviewURL: "https://p.scdn.co/" + id,
			DurationMs: 180000 + i,
		}
	}
	return domain.PlaylistResult{
		PlaylistID:   id,
		PlaylistURL:  "https://open.spotify.com/playlist/" + id,
		PlaylistName: "Stored Mix",
		TrackCount:   trackCount,
		Tracks:       tracks,
	}
}

func TestAdapterSaveAndGetByID(t *testing.T) {
	a := newTestAdapter(t)

	want := sampleResult("pl-1", 3)
	if err := a.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := a.GetByID(context.Background(), "pl-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestAdapterGetByIDNotFound(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdapterSaveIsIdempotent(t *testing.T) {
	a := newTestAdapter(t)

	result := sampleResult("pl-2", 2)
	if err := a.Save(context.Background(), result); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Re-saving with fewer tracks replaces the links, not appends.
	result.Tracks = result.Tracks[:1]
	result.TrackCount = 1
	if err := a.Save(context.Background(), result); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := a.GetByID(context.Background(), "pl-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Tracks) != 1 {
		t.Fatalf("tracks after resave: got %d, want 1", len(got.Tracks))
	}
}

func TestAdapterRecent(t *testing.T) {
	a := newTestAdapter(t)

	for _, id := range []string{"pl-a", "pl-b", "pl-c"} {
		if err := a.Save(context.Background(), sampleResult(id, 1)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	results, err := a.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("recent: got %d results, want 2", len(results))
	}
}
