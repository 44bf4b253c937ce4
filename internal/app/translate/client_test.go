package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientTranslate(t *testing.T) {
	var gotAuth string
	var gotReq chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  Der Film beginnt!  "}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})

	translated, err := client.Translate(context.Background(), "Film başlıyor!", "Deutsch")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if translated != "Der Film beginnt!" {
		t.Fatalf("expected trimmed translation, got %q", translated)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Fatalf("expected configured model, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("unexpected prompt messages %+v", gotReq.Messages)
	}
	want := `Translate the following text into Deutsch. Only provide the translation, no extra text: "Film başlıyor!"`
	if gotReq.Messages[0].Content != want {
		t.Fatalf("unexpected prompt %q", gotReq.Messages[0].Content)
	}
}

func TestClientTranslateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	if _, err := client.Translate(context.Background(), "merhaba", "English"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestClientTranslateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	if _, err := client.Translate(context.Background(), "merhaba", "English"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestClientDefaults(t *testing.T) {
	client := NewClient(ClientConfig{})

	if client.cfg.BaseURL == "" || client.cfg.Model == "" || client.cfg.HTTPClient == nil {
		t.Fatalf("expected defaults filled in, got %+v", client.cfg)
	}
}
