package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.LLM.GroqAPIKey = "gsk-test"
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid hosted config",
			modify: func(c *Config) {},
		},
		{
			name: "hosted without api key",
			modify: func(c *Config) {
				c.LLM.GroqAPIKey = ""
			},
			wantErr: true,
		},
		{
			name: "local does not need api key",
			modify: func(c *Config) {
				c.LLM.Provider = ProviderLocal
				c.LLM.GroqAPIKey = ""
			},
		},
		{
			name: "local without base url",
			modify: func(c *Config) {
				c.LLM.Provider = ProviderLocal
				c.LLM.OllamaBaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			modify: func(c *Config) {
				c.LLM.Provider = "openai"
			},
			wantErr: true,
		},
		{
			name: "zero retries",
			modify: func(c *Config) {
				c.LLM.MaxRetries = 0
			},
			wantErr: true,
		},
		{
			name: "negative cache ttl",
			modify: func(c *Config) {
				c.GenreCacheTTLSecond = -1
			},
			wantErr: true,
		},
		{
			name: "empty listen addr",
			modify: func(c *Config) {
				c.ListenAddr = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `spotify:
  client_id: abc
  client_secret: def
  timeout_seconds: 15
llm:
  provider: local
  ollama_model: mistral
genre_cache_ttl_seconds: 600
listen_addr: ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Spotify.ClientID != "abc" {
		t.Errorf("ClientID = %q, want %q", cfg.Spotify.ClientID, "abc")
	}
	if cfg.Spotify.Timeout() != 15*time.Second {
		t.Errorf("Spotify timeout = %v, want 15s", cfg.Spotify.Timeout())
	}
	if cfg.LLM.Provider != ProviderLocal {
		t.Errorf("Provider = %q, want %q", cfg.LLM.Provider, ProviderLocal)
	}
	if cfg.LLM.OllamaModel != "mistral" {
		t.Errorf("OllamaModel = %q, want %q", cfg.LLM.OllamaModel, "mistral")
	}
	if cfg.GenreCacheTTL() != 10*time.Minute {
		t.Errorf("GenreCacheTTL = %v, want 10m", cfg.GenreCacheTTL())
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	// Unset fields keep defaults.
	if cfg.DBPath != "vibeflow.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() should fall back to defaults, got error: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want default :8080", cfg.ListenAddr)
	}
	if cfg.LLM.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.LLM.MaxRetries)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("GROQ_API_KEY", "env-key")
	t.Setenv("VIBEFLOW_LISTEN_ADDR", ":7070")
	t.Setenv("VIBEFLOW_GENRE_CACHE_TTL_SECONDS", "120")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Spotify.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want env-id", cfg.Spotify.ClientID)
	}
	if cfg.LLM.GroqAPIKey != "env-key" {
		t.Errorf("GroqAPIKey = %q, want env-key", cfg.LLM.GroqAPIKey)
	}
	if cfg.ListenAddr != ":7070" {
		t.Errorf("ListenAddr = %q, want :7070", cfg.ListenAddr)
	}
	if cfg.GenreCacheTTLSecond != 120 {
		t.Errorf("GenreCacheTTLSecond = %d, want 120", cfg.GenreCacheTTLSecond)
	}
}

func TestSpotifyConfigured(t *testing.T) {
	s := SpotifyConfig{ClientID: "a", ClientSecret: "b", RefreshToken: "c"}
	if !s.Configured() {
		t.Error("expected complete credentials to report configured")
	}
	s.RefreshToken = ""
	if s.Configured() {
		t.Error("expected missing refresh token to report not configured")
	}
}
