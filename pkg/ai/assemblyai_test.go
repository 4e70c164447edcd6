package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

func newAssemblyAIServer(t *testing.T, finalStatus string, polls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/v2/upload"):
			body, _ := io.ReadAll(r.Body)
			if string(body) != "audio-bytes" {
				t.Errorf("upload body = %q", body)
			}
			json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.example.com/upload/1"})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/v2/transcript"):
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if payload["audio_url"] != "https://cdn.example.com/upload/1" {
				t.Errorf("audio_url = %v", payload["audio_url"])
			}
			json.NewEncoder(w).Encode(map[string]string{"id": "transcript-123", "status": "queued"})
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/v2/transcript/transcript-123"):
			n := atomic.AddInt32(polls, 1)
			if n < 2 {
				json.NewEncoder(w).Encode(map[string]string{"id": "transcript-123", "status": "processing"})
				return
			}
			resp := map[string]interface{}{"id": "transcript-123", "status": finalStatus}
			if finalStatus == "completed" {
				resp["text"] = "Hello team."
			} else {
				resp["error"] = "audio too short"
			}
			json.NewEncoder(w).Encode(resp)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestAssemblyAITranscribe_Completed(t *testing.T) {
	var polls int32
	ts := newAssemblyAIServer(t, "completed", &polls)
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	client.pollInterval = time.Millisecond
	client.maxPoll = 5 * time.Millisecond

	text, err := client.Transcribe(context.Background(), "meeting.mp3", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "Hello team." {
		t.Fatalf("unexpected transcript %q", text)
	}
	if atomic.LoadInt32(&polls) < 2 {
		t.Fatalf("expected at least 2 polls, got %d", polls)
	}
}

func TestAssemblyAITranscribe_Error(t *testing.T) {
	var polls int32
	ts := newAssemblyAIServer(t, "error", &polls)
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	client.pollInterval = time.Millisecond
	client.maxPoll = 5 * time.Millisecond

	_, err := client.Transcribe(context.Background(), "meeting.mp3", strings.NewReader("audio-bytes"))
	if err == nil || !strings.Contains(err.Error(), "audio too short") {
		t.Fatalf("expected provider error, got %v", err)
	}
}
