// Package campaigns manages marketing campaign content: lifecycle states,
// append-only edit history, review audit trails, AI-assisted generation and
// translation. The root package is a thin facade over the internal services;
// construct a Module with New and reach the services through its accessors.
package campaigns

import (
	"github.com/goliatone/go-campaigns/internal/campaign"
	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/internal/di"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

// Service aliases so callers can depend on the root package alone.
type (
	ContentService  = content.Service
	CampaignService = campaign.Service
)

// Model aliases for the public read surface.
type (
	Campaign            = content.Campaign
	ContentPiece        = content.ContentPiece
	ReviewAction        = content.ReviewAction
	ContentHistory      = content.ContentHistory
	EditHistoryRecord   = content.EditHistoryRecord
	TranslateResult     = content.TranslateResult
	BulkTranslateItem   = content.BulkTranslateItem
	BulkTranslateResult = content.BulkTranslateResult
	GenerateResult      = campaign.GenerateResult
)

// Request aliases for the public write surface.
type (
	CreateCampaignRequest   = campaign.CreateCampaignRequest
	GenerateContentRequest  = campaign.GenerateContentRequest
	CreateContentRequest    = content.CreateContentRequest
	ListContentRequest      = content.ListContentRequest
	UpdateContentRequest    = content.UpdateContentRequest
	ReviewContentRequest    = content.ReviewContentRequest
	SubmitEditRequest       = content.SubmitEditRequest
	TranslateContentRequest = content.TranslateContentRequest
	BulkTranslateRequest    = content.BulkTranslateRequest
	ContentFilter           = content.ContentFilter
)

// Module is the assembled campaigns runtime.
type Module struct {
	container *di.Container
}

// New builds the module from configuration. Options customise the dependency
// container, e.g. di.WithBunDB to swap the in-memory repositories for
// database-backed ones, or di.WithProvider to install an AI provider.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Content returns the content piece service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Campaigns returns the campaign service.
func (m *Module) Campaigns() CampaignService {
	return m.container.CampaignService()
}

// Workflow returns the state machine guarding content transitions.
func (m *Module) Workflow() interfaces.WorkflowEngine {
	return m.container.WorkflowEngine()
}

// Container exposes the underlying dependency container for advanced wiring.
func (m *Module) Container() *di.Container {
	return m.container
}
