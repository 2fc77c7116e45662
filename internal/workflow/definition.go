package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-campaigns/internal/runtimeconfig"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

var (
	// ErrDefinitionEntityRequired indicates the workflow definition lacks an entity identifier.
	ErrDefinitionEntityRequired = errors.New("workflow: definition entity required")
	// ErrDefinitionStatesRequired indicates the workflow definition does not declare any states.
	ErrDefinitionStatesRequired = errors.New("workflow: definition requires at least one state")
	// ErrStateNameRequired indicates a workflow state is missing its name.
	ErrStateNameRequired = errors.New("workflow: state name required")
	// ErrDuplicateState indicates duplicate workflow state names were declared.
	ErrDuplicateState = errors.New("workflow: duplicate state")
	// ErrDuplicateDefinition indicates multiple definitions were provided for the same entity.
	ErrDuplicateDefinition = errors.New("workflow: duplicate entity definition")
	// ErrTransitionNameRequired indicates a transition lacks a name.
	ErrTransitionNameRequired = errors.New("workflow: transition name required")
	// ErrTransitionStateUnknown indicates a transition references a state that was not declared.
	ErrTransitionStateUnknown = errors.New("workflow: transition references unknown state")
	// ErrInitialStateInvalid indicates the supplied initial state flag is inconsistent or unknown.
	ErrInitialStateInvalid = errors.New("workflow: invalid initial state")
)

// CompileDefinitionConfigs converts configuration-driven workflow definitions
// into runtime definitions. Validation is applied to ensure state and
// transition integrity before registration.
func CompileDefinitionConfigs(configs []runtimeconfig.WorkflowDefinitionConfig) ([]interfaces.WorkflowDefinition, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	definitions := make([]interfaces.WorkflowDefinition, 0, len(configs))
	seenEntities := make(map[string]struct{}, len(configs))

	for _, cfg := range configs {
		definition, err := compileDefinitionConfig(cfg)
		if err != nil {
			return nil, err
		}

		entityKey := strings.ToLower(strings.TrimSpace(definition.EntityType))
		if _, exists := seenEntities[entityKey]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDefinition, definition.EntityType)
		}
		seenEntities[entityKey] = struct{}{}
		definitions = append(definitions, definition)
	}

	return definitions, nil
}

func compileDefinitionConfig(cfg runtimeconfig.WorkflowDefinitionConfig) (interfaces.WorkflowDefinition, error) {
	entity := strings.TrimSpace(cfg.Entity)
	if entity == "" {
		return interfaces.WorkflowDefinition{}, ErrDefinitionEntityRequired
	}

	if len(cfg.States) == 0 {
		return interfaces.WorkflowDefinition{}, fmt.Errorf("%w: %s", ErrDefinitionStatesRequired, entity)
	}

	seen := make(map[interfaces.WorkflowState]struct{}, len(cfg.States))
	states := make([]interfaces.WorkflowStateDefinition, 0, len(cfg.States))
	var initial interfaces.WorkflowState

	for _, stateCfg := range cfg.States {
		name := normalizeStateName(stateCfg.Name)
		if name == "" {
			return interfaces.WorkflowDefinition{}, ErrStateNameRequired
		}
		if _, exists := seen[name]; exists {
			return interfaces.WorkflowDefinition{}, fmt.Errorf("%w: %s", ErrDuplicateState, name)
		}
		seen[name] = struct{}{}
		states = append(states, interfaces.WorkflowStateDefinition{
			Name:        name,
			Description: strings.TrimSpace(stateCfg.Description),
			Terminal:    stateCfg.Terminal,
		})
		if stateCfg.Initial {
			if initial != "" {
				return interfaces.WorkflowDefinition{}, fmt.Errorf("%w: multiple initial states", ErrInitialStateInvalid)
			}
			initial = name
		}
	}

	if initial == "" {
		initial = states[0].Name
	}

	transitions := make([]interfaces.WorkflowTransition, 0, len(cfg.Transitions))
	for _, transitionCfg := range cfg.Transitions {
		name := strings.ToLower(strings.TrimSpace(transitionCfg.Name))
		if name == "" {
			return interfaces.WorkflowDefinition{}, ErrTransitionNameRequired
		}
		from := normalizeStateName(transitionCfg.From)
		to := normalizeStateName(transitionCfg.To)
		if _, ok := seen[from]; !ok {
			return interfaces.WorkflowDefinition{}, fmt.Errorf("%w: %s", ErrTransitionStateUnknown, from)
		}
		if _, ok := seen[to]; !ok {
			return interfaces.WorkflowDefinition{}, fmt.Errorf("%w: %s", ErrTransitionStateUnknown, to)
		}
		transitions = append(transitions, interfaces.WorkflowTransition{
			Name:        name,
			Description: strings.TrimSpace(transitionCfg.Description),
			From:        from,
			To:          to,
		})
	}

	return interfaces.WorkflowDefinition{
		EntityType:   entity,
		InitialState: initial,
		States:       states,
		Transitions:  transitions,
	}, nil
}

func normalizeStateName(name string) interfaces.WorkflowState {
	return interfaces.WorkflowState(strings.ToLower(strings.TrimSpace(name)))
}
