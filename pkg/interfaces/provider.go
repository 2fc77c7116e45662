package interfaces

import "context"

// Provider supplies AI-backed generation and translation capabilities for
// campaign content. Implementations typically call an external language-model
// API; failures surface as errors so callers can decide how to reify them.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (*GeneratedContent, error)
	Translate(ctx context.Context, req TranslateRequest) (*GeneratedContent, error)
}

// GenerateRequest captures the inputs for campaign-level content generation.
type GenerateRequest struct {
	Model               string
	Language            string
	Instructions        string
	CampaignName        string
	CampaignDescription string
}

// TranslateRequest captures the inputs for translating an existing piece of
// content into a target language.
type TranslateRequest struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	Model          string
}

// GeneratedContent bundles provider output text with opaque generation
// metadata (model, prompt, token usage, timestamps). The lifecycle engine
// persists the metadata verbatim without interpreting it.
type GeneratedContent struct {
	Text     string
	Metadata map[string]any
}
