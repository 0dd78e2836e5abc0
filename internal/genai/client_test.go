package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
)

func fakeServer(t *testing.T, reply string, status int) (*httptest.Server, *generateRequest) {
	t.Helper()
	var captured generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"name":"models/test"}`))
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(status)
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": reply}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestGenerateReply_MapsHistoryRoles(t *testing.T) {
	srv, captured := fakeServer(t, "That sounds hard. Tell me more?", http.StatusOK)
	c := New(srv.URL, "test-key", "test-model", time.Second)

	history := []model.ChatMessage{
		{Role: model.RoleAssistant, Content: "Hello! How are you feeling today?"},
		{Role: model.RoleUser, Content: "Tired, mostly."},
	}
	reply, err := c.GenerateReply(context.Background(), history, "Work keeps piling up.")
	if err != nil {
		t.Fatalf("GenerateReply: %v", err)
	}
	if reply != "That sounds hard. Tell me more?" {
		t.Fatalf("unexpected reply %q", reply)
	}

	if len(captured.Contents) != 3 {
		t.Fatalf("got %d contents, want 3", len(captured.Contents))
	}
	if captured.Contents[0].Role != "model" || captured.Contents[1].Role != "user" {
		t.Fatalf("role mapping wrong: %s, %s", captured.Contents[0].Role, captured.Contents[1].Role)
	}
	if captured.SystemInstruction == nil {
		t.Fatalf("system instruction missing")
	}
}

func TestDetectMood_ValidLabel(t *testing.T) {
	srv, _ := fakeServer(t, " Anxious.\n", http.StatusOK)
	c := New(srv.URL, "k", "m", time.Second)

	got, err := c.DetectMood(context.Background(), "worried about tomorrow")
	if err != nil {
		t.Fatalf("DetectMood: %v", err)
	}
	if got != model.MoodAnxious {
		t.Fatalf("got %s, want anxious", got)
	}
}

func TestDetectMood_OutOfVocabularyIsError(t *testing.T) {
	srv, _ := fakeServer(t, "melancholic", http.StatusOK)
	c := New(srv.URL, "k", "m", time.Second)

	if _, err := c.DetectMood(context.Background(), "some text"); err == nil {
		t.Fatalf("expected error for out-of-vocabulary label")
	}
}

func TestGenerate_ErrorStatus(t *testing.T) {
	srv, _ := fakeServer(t, "ignored", http.StatusInternalServerError)
	c := New(srv.URL, "k", "m", time.Second)

	if _, err := c.GenerateReply(context.Background(), nil, "hello"); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestHealthPing(t *testing.T) {
	srv, _ := fakeServer(t, "", http.StatusOK)
	c := New(srv.URL, "k", "m", time.Second)

	if err := c.HealthPing(context.Background()); err != nil {
		t.Fatalf("HealthPing: %v", err)
	}
}
