// Package config loads the application configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LLM backend providers.
const (
	ProviderHosted = "hosted"
	ProviderLocal  = "local"
)

// SpotifyConfig holds the Web API credentials and client tuning.
type SpotifyConfig struct {
	ClientID       string `yaml:"client_id"`
	ClientSecret   string `yaml:"client_secret"`
	RefreshToken   string `yaml:"refresh_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Configured reports whether all credentials needed for the
// refresh-token flow are present.
func (s SpotifyConfig) Configured() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.RefreshToken != ""
}

// Timeout returns the HTTP client timeout.
func (s SpotifyConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LLMConfig selects and tunes the vibe interpretation backend.
type LLMConfig struct {
	Provider       string `yaml:"provider"`
	GroqAPIKey     string `yaml:"groq_api_key"`
	OllamaBaseURL  string `yaml:"ollama_base_url"`
	OllamaModel    string `yaml:"ollama_model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
}

// Timeout returns the backend request timeout.
func (l LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// Config contains the program configuration.
type Config struct {
	Spotify             SpotifyConfig `yaml:"spotify"`
	LLM                 LLMConfig     `yaml:"llm"`
	GenreCacheTTLSecond int           `yaml:"genre_cache_ttl_seconds"`
	DBPath              string        `yaml:"db_path"`
	ListenAddr          string        `yaml:"listen_addr"`
	LogLevel            string        `yaml:"log_level"`
}

// GenreCacheTTL returns the genre vocabulary cache lifetime.
func (c Config) GenreCacheTTL() time.Duration {
	return time.Duration(c.GenreCacheTTLSecond) * time.Second
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Spotify: SpotifyConfig{
			TimeoutSeconds: 30,
		},
		LLM: LLMConfig{
			Provider:       ProviderHosted,
			OllamaBaseURL:  "http://localhost:11434",
			OllamaModel:    "llama3.1",
			TimeoutSeconds: 60,
			MaxRetries:     3,
		},
		GenreCacheTTLSecond: 86400,
		DBPath:              "vibeflow.db",
		ListenAddr:          ":8080",
		LogLevel:            "info",
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults when path is empty or the file does not exist, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers environment variables over file values. Credentials
// use their conventional names; everything else is VIBEFLOW_* scoped.
func (c *Config) applyEnv() {
	setString(&c.Spotify.ClientID, "SPOTIFY_CLIENT_ID")
	setString(&c.Spotify.ClientSecret, "SPOTIFY_CLIENT_SECRET")
	setString(&c.Spotify.RefreshToken, "SPOTIFY_REFRESH_TOKEN")
	setString(&c.LLM.GroqAPIKey, "GROQ_API_KEY")
	setString(&c.LLM.OllamaBaseURL, "OLLAMA_HOST")

	setString(&c.LLM.Provider, "VIBEFLOW_LLM_PROVIDER")
	setString(&c.LLM.OllamaModel, "VIBEFLOW_OLLAMA_MODEL")
	setString(&c.DBPath, "VIBEFLOW_DB_PATH")
	setString(&c.ListenAddr, "VIBEFLOW_LISTEN_ADDR")
	setString(&c.LogLevel, "VIBEFLOW_LOG_LEVEL")
	setInt(&c.GenreCacheTTLSecond, "VIBEFLOW_GENRE_CACHE_TTL_SECONDS")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	locations := []string{
		"./vibeflow.yaml",
		"./vibeflow.yml",
		filepath.Join(home, ".config", "vibeflow", "config.yaml"),
	}
	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks that the selected backend has the credentials and
// tuning it needs. Spotify credentials are checked separately because
// interpretation-only runs do not require them.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderHosted:
		if c.LLM.GroqAPIKey == "" {
			return fmt.Errorf("config: groq_api_key is required when llm.provider is %q", ProviderHosted)
		}
	case ProviderLocal:
		if c.LLM.OllamaBaseURL == "" {
			return fmt.Errorf("config: ollama_base_url is required when llm.provider is %q", ProviderLocal)
		}
	default:
		return fmt.Errorf("config: unknown llm.provider %q (want %q or %q)", c.LLM.Provider, ProviderHosted, ProviderLocal)
	}

	if c.LLM.MaxRetries < 1 {
		return fmt.Errorf("config: llm.max_retries must be at least 1, got %d", c.LLM.MaxRetries)
	}
	if c.GenreCacheTTLSecond < 0 {
		return fmt.Errorf("config: genre_cache_ttl_seconds cannot be negative, got %d", c.GenreCacheTTLSecond)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("config: listen_addr cannot be empty")
	}
	return nil
}
