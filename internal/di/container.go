package di

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-campaigns/internal/ai"
	"github.com/goliatone/go-campaigns/internal/campaign"
	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/internal/logging"
	"github.com/goliatone/go-campaigns/internal/logging/gologger"
	"github.com/goliatone/go-campaigns/internal/runtimeconfig"
	"github.com/goliatone/go-campaigns/internal/workflow"
	"github.com/goliatone/go-campaigns/internal/workflow/simple"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies from configuration.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	provider       interfaces.Provider
	workflowEngine interfaces.WorkflowEngine

	contentRepo  content.ContentRepository
	campaignRepo content.CampaignRepository
	reviewRepo   content.ReviewActionRepository

	contentSvc  content.Service
	campaignSvc campaign.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB installs a bun database handle; repositories switch from memory to
// bun-backed implementations when present.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service used to wrap read-mostly repositories.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithProvider overrides the AI provider binding.
func WithProvider(provider interfaces.Provider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithLoggerProvider overrides the logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithWorkflowEngine overrides the workflow engine binding.
func WithWorkflowEngine(engine interfaces.WorkflowEngine) Option {
	return func(c *Container) {
		c.workflowEngine = engine
	}
}

// WithContentService overrides the default content service binding.
func WithContentService(svc content.Service) Option {
	return func(c *Container) {
		c.contentSvc = svc
	}
}

// WithCampaignService overrides the default campaign service binding.
func WithCampaignService(svc campaign.Service) Option {
	return func(c *Container) {
		c.campaignSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:       cfg,
		cacheTTL:     cacheTTL,
		contentRepo:  content.NewMemoryContentRepository(),
		campaignRepo: content.NewMemoryCampaignRepository(),
		reviewRepo:   content.NewMemoryReviewActionRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()

	if err := c.configureRepositories(); err != nil {
		return nil, err
	}
	c.configureProvider()

	if err := c.configureWorkflow(); err != nil {
		return nil, err
	}

	if c.contentSvc == nil {
		contentOpts := []content.ServiceOption{
			content.WithLogger(logging.ContentLogger(c.loggerProvider)),
			content.WithReviewAudit(c.Config.Features.ReviewAudit),
		}
		if c.provider != nil {
			contentOpts = append(contentOpts, content.WithProvider(c.provider))
		}
		if c.workflowEngine != nil {
			contentOpts = append(contentOpts,
				content.WithWorkflow(c.workflowEngine),
				content.WithStrictTransitions(c.Config.Features.StrictTransitions),
			)
		}
		c.contentSvc = content.NewService(c.contentRepo, c.campaignRepo, c.reviewRepo, contentOpts...)
	}

	if c.campaignSvc == nil {
		campaignOpts := []campaign.ServiceOption{
			campaign.WithLogger(logging.CampaignLogger(c.loggerProvider)),
		}
		if c.provider != nil {
			campaignOpts = append(campaignOpts, campaign.WithProvider(c.provider))
		}
		c.campaignSvc = campaign.NewService(c.campaignRepo, c.contentRepo, campaignOpts...)
	}

	return c, nil
}

// ContentService returns the configured content service.
func (c *Container) ContentService() content.Service {
	return c.contentSvc
}

// CampaignService returns the configured campaign service.
func (c *Container) CampaignService() campaign.Service {
	return c.campaignSvc
}

// WorkflowEngine returns the configured workflow engine.
func (c *Container) WorkflowEngine() interfaces.WorkflowEngine {
	return c.workflowEngine
}

// Provider returns the configured AI provider, if any.
func (c *Container) Provider() interfaces.Provider {
	return c.provider
}

// LoggerProvider returns the configured logger provider, if any.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DB returns the bun database handle, if configured.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}

	switch c.Config.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
		}
	default:
		// "noop" and unset providers fall through to the no-op module logger.
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() error {
	if c.bunDB == nil && strings.EqualFold(strings.TrimSpace(c.Config.Storage.Driver), "sqlite") {
		db, err := OpenDatabase(c.Config.Storage)
		if err != nil {
			return err
		}
		c.bunDB = db
	}

	if c.bunDB == nil {
		return nil
	}
	c.contentRepo = content.NewBunContentRepository(c.bunDB)
	c.campaignRepo = content.NewBunCampaignRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.reviewRepo = content.NewBunReviewActionRepository(c.bunDB)
	return nil
}

func (c *Container) configureProvider() {
	if c.provider != nil || !c.Config.AI.Enabled {
		return
	}

	opts := []ai.Option{
		ai.WithLogger(logging.ProviderLogger(c.loggerProvider)),
	}
	if c.Config.AI.MaxTokens > 0 {
		opts = append(opts, ai.WithMaxTokens(c.Config.AI.MaxTokens))
	}
	c.provider = ai.NewClient(c.Config.AI.BaseURL, c.Config.AI.APIKey, c.Config.AI.DefaultModel, opts...)
}

func (c *Container) configureWorkflow() error {
	if c.workflowEngine != nil {
		return nil
	}

	engine := simple.New()

	definitions, err := workflow.CompileDefinitionConfigs(c.Config.Workflow.Definitions)
	if err != nil {
		return err
	}
	for _, definition := range definitions {
		if err := engine.RegisterWorkflow(context.Background(), definition); err != nil {
			return err
		}
	}

	c.workflowEngine = engine
	return nil
}
