package campaigns

import "github.com/goliatone/go-campaigns/internal/runtimeconfig"

// Configuration aliases; the canonical definitions live in runtimeconfig so
// internal packages can consume them without importing the root package.
type (
	Config                   = runtimeconfig.Config
	StorageConfig            = runtimeconfig.StorageConfig
	CacheConfig              = runtimeconfig.CacheConfig
	AIConfig                 = runtimeconfig.AIConfig
	WorkflowConfig           = runtimeconfig.WorkflowConfig
	WorkflowDefinitionConfig = runtimeconfig.WorkflowDefinitionConfig
	WorkflowStateConfig      = runtimeconfig.WorkflowStateConfig
	WorkflowTransitionConfig = runtimeconfig.WorkflowTransitionConfig
	LoggingConfig            = runtimeconfig.LoggingConfig
	Features                 = runtimeconfig.Features
)

var (
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrAIModelRequired         = runtimeconfig.ErrAIModelRequired
)

// DefaultConfig returns the opinionated runtime defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
