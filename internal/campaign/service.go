package campaign

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/goliatone/go-campaigns/internal/logging"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// Service exposes campaign management and campaign-level content generation.
type Service interface {
	Create(ctx context.Context, req CreateCampaignRequest) (*content.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*content.Campaign, error)
	List(ctx context.Context) ([]*content.Campaign, error)
	GenerateContent(ctx context.Context, campaignID uuid.UUID, req GenerateContentRequest) (*GenerateResult, error)
}

// CreateCampaignRequest captures the inputs for creating a campaign. The slug
// is derived from the name.
type CreateCampaignRequest struct {
	Name                string
	Description         *string
	DefaultInstructions *string
}

// GenerateContentRequest captures the inputs for campaign-level generation.
// Instructions fall back to the campaign's default instructions when empty.
type GenerateContentRequest struct {
	Type         string
	Language     string
	Model        string
	Instructions string
}

// GenerateResult reifies the outcome of a generation request. Provider
// failures land here rather than in the error return, matching the
// translation envelope.
type GenerateResult struct {
	Success      bool                  `json:"success"`
	Error        string                `json:"error,omitempty"`
	ContentPiece *content.ContentPiece `json:"content_piece,omitempty"`
}

// IDGenerator produces identifiers for new records.
type IDGenerator func() uuid.UUID

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides identifier generation (primarily for testing).
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithProvider wires the AI provider used by GenerateContent.
func WithProvider(provider interfaces.Provider) ServiceOption {
	return func(s *service) {
		s.provider = provider
	}
}

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	campaigns content.CampaignRepository
	contents  content.ContentRepository
	provider  interfaces.Provider
	logger    interfaces.Logger
	now       func() time.Time
	id        IDGenerator
}

// NewService constructs a campaign service. The content repository is used to
// persist generated pieces and attach campaign contents on reads.
func NewService(campaigns content.CampaignRepository, contents content.ContentRepository, opts ...ServiceOption) Service {
	s := &service{
		campaigns: campaigns,
		contents:  contents,
		logger:    logging.NoOp(),
		now:       time.Now,
		id:        uuid.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create persists a campaign. The slug is normalized from the name.
func (s *service) Create(ctx context.Context, req CreateCampaignRequest) (*content.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	normalized, err := slug.Normalize(name)
	if err != nil || normalized == "" {
		return nil, ErrSlugInvalid
	}

	now := s.now()
	record := &content.Campaign{
		ID:                  s.id(),
		Name:                name,
		Slug:                normalized,
		Description:         req.Description,
		DefaultInstructions: req.DefaultInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	return s.campaigns.Create(ctx, record)
}

// Get fetches a campaign with its content pieces attached.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*content.Campaign, error) {
	if id == uuid.Nil {
		return nil, ErrCampaignIDRequired
	}

	record, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pieces, err := s.contents.List(ctx, content.ContentFilter{
		CampaignID:  &record.ID,
		NewestFirst: true,
	})
	if err != nil {
		return nil, err
	}
	record.Contents = pieces

	return record, nil
}

// List returns every campaign, oldest first.
func (s *service) List(ctx context.Context) ([]*content.Campaign, error) {
	return s.campaigns.List(ctx)
}

// GenerateContent asks the provider for campaign copy and persists the result
// as a new ai_suggested piece. Missing campaigns surface as errors; provider
// failures are reified into the result envelope.
func (s *service) GenerateContent(ctx context.Context, campaignID uuid.UUID, req GenerateContentRequest) (*GenerateResult, error) {
	if campaignID == uuid.Nil {
		return nil, ErrCampaignIDRequired
	}
	if strings.TrimSpace(req.Type) == "" {
		return nil, ErrTypeRequired
	}

	record, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if s.provider == nil {
		return &GenerateResult{Error: ErrProviderNotConfigured.Error()}, nil
	}

	instructions := strings.TrimSpace(req.Instructions)
	if instructions == "" && record.DefaultInstructions != nil {
		instructions = strings.TrimSpace(*record.DefaultInstructions)
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = "en"
	}

	description := ""
	if record.Description != nil {
		description = *record.Description
	}

	generated, err := s.provider.Generate(ctx, interfaces.GenerateRequest{
		Model:               req.Model,
		Language:            language,
		Instructions:        instructions,
		CampaignName:        record.Name,
		CampaignDescription: description,
	})
	if err != nil {
		s.logger.Warn("content generation failed",
			"campaign_id", campaignID.String(),
			"type", req.Type,
			"error", err,
		)
		return &GenerateResult{Error: err.Error()}, nil
	}

	now := s.now()
	piece := &content.ContentPiece{
		ID:         s.id(),
		CampaignID: record.ID,
		Type:       req.Type,
		Language:   language,
		Text:       generated.Text,
		State:      domain.StateAISuggested,
		AIMetadata: generated.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.contents.Create(ctx, piece)
	if err != nil {
		s.logger.Error("persisting generated piece failed",
			"campaign_id", campaignID.String(),
			"error", err,
		)
		return &GenerateResult{Error: err.Error()}, nil
	}

	return &GenerateResult{Success: true, ContentPiece: created}, nil
}
