package workflow

import (
	"errors"
	"testing"

	"github.com/goliatone/go-campaigns/internal/runtimeconfig"
)

func pressReleaseConfig() runtimeconfig.WorkflowDefinitionConfig {
	return runtimeconfig.WorkflowDefinitionConfig{
		Entity: "press_release",
		States: []runtimeconfig.WorkflowStateConfig{
			{Name: "Draft", Initial: true},
			{Name: "Published", Terminal: true},
		},
		Transitions: []runtimeconfig.WorkflowTransitionConfig{
			{Name: "Publish", From: "Draft", To: "Published"},
		},
	}
}

func TestCompileDefinitionConfigsNormalizesNames(t *testing.T) {
	definitions, err := CompileDefinitionConfigs([]runtimeconfig.WorkflowDefinitionConfig{pressReleaseConfig()})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(definitions) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(definitions))
	}

	definition := definitions[0]
	if definition.InitialState != "draft" {
		t.Fatalf("expected lowercased initial state, got %q", definition.InitialState)
	}
	if definition.Transitions[0].Name != "publish" || definition.Transitions[0].To != "published" {
		t.Fatalf("expected normalized transition, got %+v", definition.Transitions[0])
	}
}

func TestCompileDefinitionConfigsEmptyInput(t *testing.T) {
	definitions, err := CompileDefinitionConfigs(nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if definitions != nil {
		t.Fatalf("expected nil definitions, got %+v", definitions)
	}
}

func TestCompileDefinitionConfigsDefaultsInitialToFirstState(t *testing.T) {
	cfg := pressReleaseConfig()
	cfg.States[0].Initial = false

	definitions, err := CompileDefinitionConfigs([]runtimeconfig.WorkflowDefinitionConfig{cfg})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if definitions[0].InitialState != "draft" {
		t.Fatalf("expected first state as initial, got %q", definitions[0].InitialState)
	}
}

func TestCompileDefinitionConfigsValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*runtimeconfig.WorkflowDefinitionConfig)
		wantErr error
	}{
		{
			name:    "missing entity",
			mutate:  func(cfg *runtimeconfig.WorkflowDefinitionConfig) { cfg.Entity = "  " },
			wantErr: ErrDefinitionEntityRequired,
		},
		{
			name:    "missing states",
			mutate:  func(cfg *runtimeconfig.WorkflowDefinitionConfig) { cfg.States = nil },
			wantErr: ErrDefinitionStatesRequired,
		},
		{
			name: "blank state name",
			mutate: func(cfg *runtimeconfig.WorkflowDefinitionConfig) {
				cfg.States = append(cfg.States, runtimeconfig.WorkflowStateConfig{Name: " "})
			},
			wantErr: ErrStateNameRequired,
		},
		{
			name: "duplicate state",
			mutate: func(cfg *runtimeconfig.WorkflowDefinitionConfig) {
				cfg.States = append(cfg.States, runtimeconfig.WorkflowStateConfig{Name: "DRAFT"})
			},
			wantErr: ErrDuplicateState,
		},
		{
			name: "multiple initial states",
			mutate: func(cfg *runtimeconfig.WorkflowDefinitionConfig) {
				cfg.States[1].Initial = true
			},
			wantErr: ErrInitialStateInvalid,
		},
		{
			name: "unnamed transition",
			mutate: func(cfg *runtimeconfig.WorkflowDefinitionConfig) {
				cfg.Transitions[0].Name = ""
			},
			wantErr: ErrTransitionNameRequired,
		},
		{
			name: "transition to unknown state",
			mutate: func(cfg *runtimeconfig.WorkflowDefinitionConfig) {
				cfg.Transitions[0].To = "archived"
			},
			wantErr: ErrTransitionStateUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := pressReleaseConfig()
			tc.mutate(&cfg)

			_, err := CompileDefinitionConfigs([]runtimeconfig.WorkflowDefinitionConfig{cfg})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCompileDefinitionConfigsRejectsDuplicateEntities(t *testing.T) {
	_, err := CompileDefinitionConfigs([]runtimeconfig.WorkflowDefinitionConfig{
		pressReleaseConfig(),
		pressReleaseConfig(),
	})
	if !errors.Is(err, ErrDuplicateDefinition) {
		t.Fatalf("expected ErrDuplicateDefinition, got %v", err)
	}
}
