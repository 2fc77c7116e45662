package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

func newTestServer(t *testing.T, handler func(t *testing.T, req oaiChatRequest) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		var req oaiChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		response := handler(t, req)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func chatResponse(text string, tokens int) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": text}},
		},
		"usage": map[string]any{"total_tokens": tokens},
	}
}

func TestClient_Generate(t *testing.T) {
	var captured oaiChatRequest
	server := newTestServer(t, func(t *testing.T, req oaiChatRequest) any {
		captured = req
		return chatResponse("  Fresh copy for your launch.  ", 42)
	})
	defer server.Close()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	client := NewClient(server.URL+"/v1", "test-key", "gpt-3.5-turbo",
		WithClock(func() time.Time { return fixed }),
	)

	got, err := client.Generate(context.Background(), interfaces.GenerateRequest{
		Model:               "openai-gpt4",
		Language:            "es",
		Instructions:        "mention the discount",
		CampaignName:        "Summer Sale",
		CampaignDescription: "Beachwear promotion",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got.Text != "Fresh copy for your launch." {
		t.Fatalf("expected trimmed text, got %q", got.Text)
	}
	if captured.Model != "gpt-4" {
		t.Fatalf("expected mapped model gpt-4, got %s", captured.Model)
	}
	if captured.MaxTokens != 500 {
		t.Fatalf("expected max_tokens 500, got %d", captured.MaxTokens)
	}
	if captured.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", captured.Temperature)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}

	prompt := captured.Messages[1].Content
	for _, want := range []string{"Summer Sale", "Beachwear promotion", "Spanish", "mention the discount"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}

	if got.Metadata["model"] != "openai-gpt4" {
		t.Fatalf("metadata should keep the alias, got %v", got.Metadata["model"])
	}
	if got.Metadata["tokens_used"] != 42 {
		t.Fatalf("expected tokens_used 42, got %v", got.Metadata["tokens_used"])
	}
	if got.Metadata["generated_at"] != "2025-06-01T12:00:00Z" {
		t.Fatalf("unexpected generated_at %v", got.Metadata["generated_at"])
	}
}

func TestClient_Translate(t *testing.T) {
	var captured oaiChatRequest
	server := newTestServer(t, func(t *testing.T, req oaiChatRequest) any {
		captured = req
		return chatResponse("Hola mundo", 10)
	})
	defer server.Close()

	client := NewClient(server.URL+"/v1", "", "gpt-3.5-turbo")

	got, err := client.Translate(context.Background(), interfaces.TranslateRequest{
		Text:           "Hello world",
		SourceLanguage: "en",
		TargetLanguage: "es",
		Model:          "openai-gpt3.5",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if got.Text != "Hola mundo" {
		t.Fatalf("unexpected text %q", got.Text)
	}
	if captured.Temperature != 0.3 {
		t.Fatalf("expected temperature 0.3 for translation, got %v", captured.Temperature)
	}
	prompt := captured.Messages[1].Content
	if !strings.Contains(prompt, "from English to Spanish") {
		t.Fatalf("prompt missing language names: %s", prompt)
	}
	if !strings.Contains(prompt, "Hello world") {
		t.Fatalf("prompt missing source text: %s", prompt)
	}
}

func TestClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limit exceeded", "type": "rate_limit"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v1", "key", "gpt-3.5-turbo")

	_, err := client.Generate(context.Background(), interfaces.GenerateRequest{
		Model:        "openai-gpt4",
		CampaignName: "Promo",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("expected api error message, got %v", err)
	}
}

func TestClient_Generate_EmptyChoices(t *testing.T) {
	server := newTestServer(t, func(t *testing.T, req oaiChatRequest) any {
		return map[string]any{"choices": []any{}}
	})
	defer server.Close()

	client := NewClient(server.URL+"/v1", "key", "gpt-3.5-turbo")

	_, err := client.Generate(context.Background(), interfaces.GenerateRequest{
		Model:        "openai-gpt4",
		CampaignName: "Promo",
	})
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}

func TestMapModelName(t *testing.T) {
	cases := map[string]string{
		"openai-gpt4":      "gpt-4",
		"openai-gpt3.5":    "gpt-3.5-turbo",
		"anthropic-claude": "gpt-4",
		"":                 "gpt-3.5-turbo",
		"gpt-4o":           "gpt-4o",
	}
	for alias, want := range cases {
		if got := MapModelName(alias); got != want {
			t.Fatalf("MapModelName(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestLanguageName_FallsBackToEnglish(t *testing.T) {
	if got := LanguageName("xx"); got != "English" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := LanguageName("pt"); got != "Portuguese" {
		t.Fatalf("expected Portuguese, got %q", got)
	}
}
