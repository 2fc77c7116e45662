package di

import (
	"context"
	"testing"

	"github.com/goliatone/go-campaigns/internal/ai"
	"github.com/goliatone/go-campaigns/internal/campaign"
	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/goliatone/go-campaigns/internal/runtimeconfig"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

func TestNewContainerDefaults(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if container.ContentService() == nil {
		t.Fatal("expected content service")
	}
	if container.CampaignService() == nil {
		t.Fatal("expected campaign service")
	}
	if container.WorkflowEngine() == nil {
		t.Fatal("expected workflow engine")
	}
	if container.Provider() != nil {
		t.Fatal("provider should be nil when AI is disabled")
	}
}

func TestNewContainerValidatesConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "oracle"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewContainerOpensSQLiteStorage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "sqlite"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.DB() == nil {
		t.Fatal("expected bun handle for sqlite storage")
	}
	defer container.DB().Close()
}

func TestNewContainerBuildsAIProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.AI.Enabled = true
	cfg.AI.APIKey = "test"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.Provider() == nil {
		t.Fatal("expected AI provider when enabled")
	}
}

func TestNewContainerProviderOverride(t *testing.T) {
	stub := &ai.StubProvider{}
	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithProvider(stub))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.Provider() != interfaces.Provider(stub) {
		t.Fatal("expected provider override to win")
	}
}

func TestNewContainerRegistersConfiguredWorkflow(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Workflow.Definitions = []runtimeconfig.WorkflowDefinitionConfig{
		{
			Entity: "press_release",
			States: []runtimeconfig.WorkflowStateConfig{
				{Name: "draft", Initial: true},
				{Name: "published", Terminal: true},
			},
			Transitions: []runtimeconfig.WorkflowTransitionConfig{
				{Name: "publish", From: "draft", To: "published"},
			},
		},
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	transitions, err := container.WorkflowEngine().AvailableTransitions(context.Background(), interfaces.TransitionQuery{
		EntityType: "press_release",
		State:      "draft",
	})
	if err != nil {
		t.Fatalf("available transitions: %v", err)
	}
	if len(transitions) != 1 || transitions[0].Name != "publish" {
		t.Fatalf("expected publish transition, got %+v", transitions)
	}
}

func TestNewContainerInvalidWorkflowDefinition(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Workflow.Definitions = []runtimeconfig.WorkflowDefinitionConfig{
		{Entity: "press_release"},
	}

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected workflow compilation error")
	}
}

func TestContainerEndToEndFlow(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithProvider(&ai.StubProvider{}))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	created, err := container.CampaignService().Create(ctx, campaign.CreateCampaignRequest{Name: "Launch"})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	piece, err := container.ContentService().Create(ctx, content.CreateContentRequest{
		CampaignID: created.ID,
		Type:       "email",
		Language:   "en",
		Text:       "hello",
	})
	if err != nil {
		t.Fatalf("create piece: %v", err)
	}

	result, err := container.ContentService().Translate(ctx, piece.ID, content.TranslateContentRequest{
		TargetLanguage: "es",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !result.Success || result.ContentPiece.State != domain.StateAISuggested {
		t.Fatalf("unexpected translate result: %+v", result)
	}
}
