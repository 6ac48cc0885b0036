package spotify_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/ewilliams-labs/vibeflow/internal/adapters/spotify"
	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
)

var testLogger = log.New(io.Discard, "", 0)

func TestListSeedGenres(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommendations/available-genre-seeds" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"genres":["acoustic","ambient","jazz"]}`))
	}))
	defer ts.Close()

	client := spotify.New(http.DefaultClient, ts.URL, testLogger)
	genres, err := client.ListSeedGenres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"acoustic", "ambient", "jazz"}
	if !reflect.DeepEqual(genres, want) {
		t.Fatalf("genres: got %v, want %v", genres, want)
	}
}

func TestSearch(t *testing.T) {
	var gotQuery, gotType, gotLimit string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotQuery = r.URL.Query().Get("q")
		gotType = r.URL.Query().Get("type")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracks": {
				"items": [
					{
						"id": "abc123",
						"name": "Midnight City",
						"uri": "spotify:track:abc123",
						"preview_url": "https://p.scdn.co/abc123",
						"duration_ms": 241000,
						"artists": [{"name": "M83"}, {"name": "Guest"}]
					}
				]
			}
		}`))
	}))
	defer ts.Close()

	client := spotify.New(http.DefaultClient, ts.URL, testLogger)
	tracks, err := client.Search(context.Background(), "genre:synth-pop", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "genre:synth-pop" || gotType != "track" || gotLimit != "30" {
		t.Fatalf("request params: q=%q type=%q limit=%q", gotQuery, gotType, gotLimit)
	}

	want := domain.Track{
		ID:         "abc123",
		Name:       "Midnight City",
		Artists:    []string{"M83", "Guest"},
		URI:        "spotify:track:abc123",
		PreviewURL: "https://p.scdn.co/abc123",
		DurationMs: 241000,
	}
	if len(tracks) != 1 || !reflect.DeepEqual(tracks[0], want) {
		t.Fatalf("tracks: got %+v, want %+v", tracks, want)
	}
}

func TestCurrentUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":"user-42","display_name":"Test Listener"}`))
	}))
	defer ts.Close()

	client := spotify.New(http.DefaultClient, ts.URL, testLogger)
	user, err := client.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-42" || user.DisplayName != "Test Listener" {
		t.Fatalf("user: got %+v", user)
	}
}

func TestCreatePlaylistAndAddItems(t *testing.T) {
	var createBody map[string]any
	var addBodies [][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/user-42/playlists":
			if err := json.NewDecoder(r.Body).Decode(&createBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"id": "pl-9",
				"name": "Evening Mix",
				"external_urls": {"spotify": "https://open.spotify.com/playlist/pl-9"}
			}`))
		case "/playlists/pl-9/tracks":
			var body struct {
				URIs []string `json:"uris"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			addBodies = append(addBodies, body.URIs)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"snapshot_id":"snap-1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := spotify.New(http.DefaultClient, ts.URL, testLogger)

	handle, err := client.CreatePlaylist(context.Background(), "user-42", "Evening Mix", true, "Generated by Vibeflow | 2 tracks")
	if err != nil {
		t.Fatalf("create playlist: %v", err)
	}
	if handle.ID != "pl-9" || handle.URL != "https://open.spotify.com/playlist/pl-9" {
		t.Fatalf("handle: got %+v", handle)
	}
	if createBody["name"] != "Evening Mix" || createBody["public"] != true {
		t.Fatalf("create body: got %v", createBody)
	}

	uris := []string{"spotify:track:a", "spotify:track:b"}
	if err := client.AddItems(context.Background(), "pl-9", uris); err != nil {
		t.Fatalf("add items: %v", err)
	}
	if len(addBodies) != 1 || !reflect.DeepEqual(addBodies[0], uris) {
		t.Fatalf("add bodies: got %v", addBodies)
	}
}

func TestNewWithCredentialsRequiresSecrets(t *testing.T) {
	_, err := spotify.NewWithCredentials(context.Background(), spotify.Credentials{}, 0, testLogger)
	if err == nil {
		t.Fatal("expected construction error for missing credentials")
	}

	_, err = spotify.NewWithCredentials(context.Background(), spotify.Credentials{
		ClientID:     "id",
		ClientSecret: "secret",
	}, 0, testLogger)
	if err == nil {
		t.Fatal("expected construction error for missing refresh token")
	}
}
