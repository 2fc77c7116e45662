package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrStorageDriverUnknown indicates an unsupported storage driver identifier.
	ErrStorageDriverUnknown = errors.New("config: unknown storage driver")
	// ErrAdvancedCacheRequiresEnabledCache flags cache feature inconsistencies.
	ErrAdvancedCacheRequiresEnabledCache = errors.New("config: advanced cache requires cache to be enabled")
	// ErrLoggingProviderRequired indicates the logger feature was enabled without a provider.
	ErrLoggingProviderRequired = errors.New("config: logging provider required")
	// ErrLoggingProviderUnknown indicates an unsupported logging provider identifier.
	ErrLoggingProviderUnknown = errors.New("config: unknown logging provider")
	// ErrLoggingLevelInvalid indicates an unsupported logging level.
	ErrLoggingLevelInvalid = errors.New("config: invalid logging level")
	// ErrLoggingFormatInvalid indicates an unsupported logging format.
	ErrLoggingFormatInvalid = errors.New("config: invalid logging format")
	// ErrAIModelRequired indicates the AI provider was enabled without a default model.
	ErrAIModelRequired = errors.New("config: ai default model required")
)

// Config drives construction of the campaigns runtime.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Storage         StorageConfig
	Cache           CacheConfig
	AI              AIConfig
	Workflow        WorkflowConfig
	Logging         LoggingConfig
	Features        Features
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures cache behaviour toggles for read-mostly repositories.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// AIConfig wires the OpenAI-compatible provider client.
type AIConfig struct {
	Enabled      bool
	BaseURL      string
	APIKey       string
	DefaultModel string
	MaxTokens    int
	Timeout      time.Duration
}

// WorkflowConfig declares configuration-driven workflow definitions. When
// empty the built-in content workflow is used.
type WorkflowConfig struct {
	Definitions []WorkflowDefinitionConfig
}

// WorkflowDefinitionConfig mirrors a workflow definition in configuration form.
type WorkflowDefinitionConfig struct {
	Entity      string
	States      []WorkflowStateConfig
	Transitions []WorkflowTransitionConfig
}

// WorkflowStateConfig documents a configurable workflow state.
type WorkflowStateConfig struct {
	Name        string
	Description string
	Initial     bool
	Terminal    bool
}

// WorkflowTransitionConfig declares a configurable transition between states.
type WorkflowTransitionConfig struct {
	Name        string
	Description string
	From        string
	To          string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional behaviours of the runtime.
type Features struct {
	// StrictTransitions rejects state changes that are not part of the
	// registered content workflow. Off by default to preserve the permissive
	// reviewer-override behaviour.
	StrictTransitions bool
	// ReviewAudit appends a ReviewAction row for every review or edit.
	ReviewAudit bool
	Logger      bool
}

// DefaultConfig returns opinionated defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Storage: StorageConfig{
			Driver: "memory",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		AI: AIConfig{
			Enabled:      false,
			BaseURL:      "https://api.openai.com/v1",
			DefaultModel: "gpt-3.5-turbo",
			MaxTokens:    500,
			Timeout:      2 * time.Minute,
		},
		Workflow: WorkflowConfig{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
		},
		Features: Features{
			ReviewAudit: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if driver := normalizeToken(cfg.Storage.Driver); driver != "" && !isSupportedDriver(driver) {
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
	}
	if cfg.AI.Enabled && strings.TrimSpace(cfg.AI.DefaultModel) == "" {
		return ErrAIModelRequired
	}
	if cfg.Features.Logger {
		provider := normalizeToken(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "memory", "sqlite", "postgres", "bun":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalizeToken(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalizeToken(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
