package campaign_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-campaigns/internal/campaign"
	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/google/uuid"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sequentialIDs(seed int) campaign.IDGenerator {
	next := seed
	return func() uuid.UUID {
		next++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", next))
	}
}

type stubProvider struct {
	lastRequest interfaces.GenerateRequest
	text        string
	err         error
}

func (p *stubProvider) Generate(_ context.Context, req interfaces.GenerateRequest) (*interfaces.GeneratedContent, error) {
	p.lastRequest = req
	if p.err != nil {
		return nil, p.err
	}
	return &interfaces.GeneratedContent{
		Text:     p.text,
		Metadata: map[string]any{"model": req.Model},
	}, nil
}

func (p *stubProvider) Translate(_ context.Context, req interfaces.TranslateRequest) (*interfaces.GeneratedContent, error) {
	return &interfaces.GeneratedContent{Text: req.Text}, nil
}

func newService(t *testing.T, opts ...campaign.ServiceOption) (campaign.Service, *content.MemoryContentRepository) {
	t.Helper()
	campaigns := content.NewMemoryCampaignRepository()
	contents := content.NewMemoryContentRepository()
	base := []campaign.ServiceOption{
		campaign.WithClock(func() time.Time { return fixedNow }),
		campaign.WithIDGenerator(sequentialIDs(0)),
	}
	return campaign.NewService(campaigns, contents, append(base, opts...)...), contents
}

func TestService_Create_NormalizesSlug(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{
		Name: "Summer Launch 2025!",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "summer-launch-2025" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if created.Name != "Summer Launch 2025!" {
		t.Fatalf("name should keep original casing, got %q", created.Name)
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{Name: "   "})
	if !errors.Is(err, campaign.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestService_Get_AttachesContents(t *testing.T) {
	svc, contents := newService(t)

	created, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{Name: "Holiday"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := contents.Create(context.Background(), &content.ContentPiece{
			ID:         uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-0000000001%02d", i)),
			CampaignID: created.ID,
			Type:       "email",
			Language:   "en",
			State:      domain.StateDraft,
			CreatedAt:  fixedNow.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed piece: %v", err)
		}
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(got.Contents))
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), uuid.MustParse("00000000-0000-0000-0000-000000004242"))
	if !content.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_GenerateContent_CreatesAISuggestedPiece(t *testing.T) {
	provider := &stubProvider{text: "Fresh summer vibes, now 20% off."}
	svc, _ := newService(t, campaign.WithProvider(provider))

	instructions := "Always mention the discount"
	created, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{
		Name:                "Summer Sale",
		DefaultInstructions: &instructions,
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	result, err := svc.GenerateContent(context.Background(), created.ID, campaign.GenerateContentRequest{
		Type:  "social_post",
		Model: "gpt-4",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}

	piece := result.ContentPiece
	if piece == nil {
		t.Fatal("expected generated piece")
	}
	if piece.State != domain.StateAISuggested {
		t.Fatalf("expected ai_suggested, got %s", piece.State)
	}
	if piece.Text != "Fresh summer vibes, now 20% off." {
		t.Fatalf("unexpected text %q", piece.Text)
	}
	if piece.Language != "en" {
		t.Fatalf("expected default language en, got %s", piece.Language)
	}

	// Default instructions flow through when the request omits them.
	if provider.lastRequest.Instructions != instructions {
		t.Fatalf("expected default instructions, got %q", provider.lastRequest.Instructions)
	}
	if provider.lastRequest.CampaignName != "Summer Sale" {
		t.Fatalf("expected campaign name, got %q", provider.lastRequest.CampaignName)
	}
}

func TestService_GenerateContent_ExplicitInstructionsWin(t *testing.T) {
	provider := &stubProvider{text: "copy"}
	svc, _ := newService(t, campaign.WithProvider(provider))

	fallback := "fallback"
	created, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{
		Name:                "Promo",
		DefaultInstructions: &fallback,
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	if _, err := svc.GenerateContent(context.Background(), created.ID, campaign.GenerateContentRequest{
		Type:         "email",
		Instructions: "Be formal",
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if provider.lastRequest.Instructions != "Be formal" {
		t.Fatalf("expected explicit instructions, got %q", provider.lastRequest.Instructions)
	}
}

func TestService_GenerateContent_MissingCampaignIsError(t *testing.T) {
	svc, _ := newService(t, campaign.WithProvider(&stubProvider{text: "x"}))

	_, err := svc.GenerateContent(context.Background(), uuid.MustParse("00000000-0000-0000-0000-000000007777"), campaign.GenerateContentRequest{
		Type: "email",
	})
	if !content.IsNotFound(err) {
		t.Fatalf("expected not found before provider call, got %v", err)
	}
}

func TestService_GenerateContent_ProviderFailureIsReified(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}
	svc, _ := newService(t, campaign.WithProvider(provider))

	created, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{Name: "Promo"})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	result, err := svc.GenerateContent(context.Background(), created.ID, campaign.GenerateContentRequest{
		Type: "email",
	})
	if err != nil {
		t.Fatalf("provider failure must not surface as error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure result")
	}
	if result.Error != "quota exceeded" {
		t.Fatalf("unexpected error message %q", result.Error)
	}
}

func TestService_GenerateContent_NoProviderConfigured(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), campaign.CreateCampaignRequest{Name: "Promo"})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	result, err := svc.GenerateContent(context.Background(), created.ID, campaign.GenerateContentRequest{
		Type: "email",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Success || result.Error != campaign.ErrProviderNotConfigured.Error() {
		t.Fatalf("expected provider-not-configured envelope, got %+v", result)
	}
}
