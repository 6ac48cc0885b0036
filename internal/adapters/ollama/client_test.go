package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientComplete(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		wantErr      bool
		want         string
	}{
		{
			name:         "success",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"{\"target_valence\":0.4}"}}`,
			want:         `{"target_valence":0.4}`,
		},
		{
			name:         "server error",
			status:       http.StatusInternalServerError,
			responseBody: `{"error":"bad"}`,
			wantErr:      true,
		},
		{
			name:         "model error in body",
			status:       http.StatusOK,
			responseBody: `{"error":"model not found"}`,
			wantErr:      true,
		},
		{
			name:         "empty content",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"  "}}`,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequest chatRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/chat" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "llama3.1", time.Second)
			content, err := client.Complete(context.Background(), "system text", "user text")

			if (err != nil) != tt.wantErr {
				t.Fatalf("expected err=%v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}
			if content != tt.want {
				t.Fatalf("content: got %q, want %q", content, tt.want)
			}
			if gotRequest.Model != "llama3.1" {
				t.Fatalf("model: got %q", gotRequest.Model)
			}
			if gotRequest.Format != "json" {
				t.Fatalf("format: got %q", gotRequest.Format)
			}
			if gotRequest.Stream {
				t.Fatal("expected stream=false")
			}
			if gotRequest.Options.Temperature != temperature {
				t.Fatalf("temperature: got %v", gotRequest.Options.Temperature)
			}
			if len(gotRequest.Messages) != 2 {
				t.Fatalf("messages: got %d, want 2", len(gotRequest.Messages))
			}
			if gotRequest.Messages[0].Role != "system" || gotRequest.Messages[0].Content != "system text" {
				t.Fatal("system message mismatch")
			}
			if gotRequest.Messages[1].Role != "user" || gotRequest.Messages[1].Content != "user text" {
				t.Fatal("user message mismatch")
			}
		})
	}
}

func TestClientDefaults(t *testing.T) {
	client := NewClient("", "", 0)
	if client.baseURL != defaultBaseURL {
		t.Fatalf("base url: got %q", client.baseURL)
	}
	if client.Model() != defaultModel {
		t.Fatalf("model: got %q", client.Model())
	}
}
