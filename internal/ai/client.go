package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-campaigns/internal/logging"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

const (
	generationSystemPrompt = "You are a professional marketing content creator. Generate engaging, persuasive marketing content that captures attention and drives action. Keep the content concise, compelling, and appropriate for the target audience."

	translationSystemPrompt = "You are a professional translator specializing in marketing content. Provide accurate translations that maintain the persuasive power and emotional impact of the original text while adapting it culturally for the target audience."
)

// Client calls any OpenAI-compatible /v1/chat/completions endpoint. Works with
// OpenAI itself as well as vLLM, LiteLLM, LocalAI, and similar self-hosted
// gateways.
type Client struct {
	baseURL      string
	apiKey       string
	defaultModel string
	maxTokens    int
	httpClient   *http.Client
	logger       interfaces.Logger
	now          func() time.Time
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (primarily for testing).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the clock used for generation timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *Client) {
		if clock != nil {
			c.now = clock
		}
	}
}

// WithMaxTokens overrides the completion token cap.
func WithMaxTokens(maxTokens int) Option {
	return func(c *Client) {
		if maxTokens > 0 {
			c.maxTokens = maxTokens
		}
	}
}

// NewClient builds an OpenAI-compatible provider. baseURL should include the
// /v1 prefix, e.g. "https://api.openai.com/v1". apiKey can be empty for local
// models that do not require authentication.
func NewClient(baseURL, apiKey, defaultModel string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:       strings.TrimSpace(apiKey),
		defaultModel: strings.TrimSpace(defaultModel),
		maxTokens:    500,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate implements interfaces.Provider for campaign-level generation.
func (c *Client) Generate(ctx context.Context, req interfaces.GenerateRequest) (*interfaces.GeneratedContent, error) {
	language := req.Language
	if strings.TrimSpace(language) == "" {
		language = "en"
	}
	prompt := buildGenerationPrompt(req.CampaignName, req.CampaignDescription, language, req.Instructions)

	c.logger.Info("generating content",
		"model", req.Model,
		"campaign", req.CampaignName,
	)

	text, tokens, err := c.complete(ctx, req.Model, generationSystemPrompt, prompt, 0.7)
	if err != nil {
		c.logger.Error("content generation failed", "error", err)
		return nil, fmt.Errorf("ai content generation failed: %w", err)
	}

	return c.generatedContent(req.Model, prompt, text, tokens), nil
}

// Translate implements interfaces.Provider for content translation.
func (c *Client) Translate(ctx context.Context, req interfaces.TranslateRequest) (*interfaces.GeneratedContent, error) {
	prompt := buildTranslationPrompt(req.Text, req.SourceLanguage, req.TargetLanguage)

	c.logger.Info("translating content",
		"source_language", req.SourceLanguage,
		"target_language", req.TargetLanguage,
		"model", req.Model,
	)

	text, tokens, err := c.complete(ctx, req.Model, translationSystemPrompt, prompt, 0.3)
	if err != nil {
		c.logger.Error("translation failed", "error", err)
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	return c.generatedContent(req.Model, prompt, text, tokens), nil
}

func (c *Client) generatedContent(model, prompt, text string, tokens int) *interfaces.GeneratedContent {
	metadata := map[string]any{
		"model":        model,
		"generated_at": c.now().UTC().Format(time.RFC3339),
		"prompt":       prompt,
	}
	if tokens > 0 {
		metadata["tokens_used"] = tokens
	}
	return &interfaces.GeneratedContent{Text: text, Metadata: metadata}
}

func (c *Client) complete(ctx context.Context, model, systemPrompt, userPrompt string, temperature float64) (string, int, error) {
	reqBody := oaiChatRequest{
		Model: MapModelName(firstNonEmpty(model, c.defaultModel)),
		Messages: []oaiMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, err
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("chat completions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp oaiErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", 0, fmt.Errorf("chat completions api error: %s", errResp.Error.Message)
		}
		return "", 0, fmt.Errorf("chat completions api error: %s", resp.Status)
	}

	var chatResp oaiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", 0, fmt.Errorf("chat completions decode: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", 0, fmt.Errorf("empty response from chat completions api")
	}
	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", 0, fmt.Errorf("empty response from chat completions api")
	}
	return text, chatResp.Usage.TotalTokens, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// OpenAI-compatible request/response types.

type oaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaiChatRequest struct {
	Model       string       `json:"model"`
	Messages    []oaiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature float64      `json:"temperature,omitempty"`
}

type oaiChatResponse struct {
	Choices []struct {
		Message oaiMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type oaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
