package ai

import (
	"context"
	"fmt"

	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

// StubProvider is a deterministic Provider for tests and offline development.
// GenerateFunc/TranslateFunc take precedence when set; otherwise canned
// responses echo the inputs.
type StubProvider struct {
	GenerateFunc  func(ctx context.Context, req interfaces.GenerateRequest) (*interfaces.GeneratedContent, error)
	TranslateFunc func(ctx context.Context, req interfaces.TranslateRequest) (*interfaces.GeneratedContent, error)
}

func (p *StubProvider) Generate(ctx context.Context, req interfaces.GenerateRequest) (*interfaces.GeneratedContent, error) {
	if p.GenerateFunc != nil {
		return p.GenerateFunc(ctx, req)
	}
	return &interfaces.GeneratedContent{
		Text: fmt.Sprintf("Generated copy for %s", req.CampaignName),
		Metadata: map[string]any{
			"model": req.Model,
		},
	}, nil
}

func (p *StubProvider) Translate(ctx context.Context, req interfaces.TranslateRequest) (*interfaces.GeneratedContent, error) {
	if p.TranslateFunc != nil {
		return p.TranslateFunc(ctx, req)
	}
	return &interfaces.GeneratedContent{
		Text: fmt.Sprintf("[%s] %s", req.TargetLanguage, req.Text),
		Metadata: map[string]any{
			"model": req.Model,
		},
	}, nil
}
