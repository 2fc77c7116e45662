package contentcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-campaigns/internal/campaign"
	"github.com/goliatone/go-campaigns/internal/commands"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/google/uuid"
)

const generateContentMessageType = "campaigns.campaign.generate_content"

// GenerateContentCommand requests AI generation of a new content piece for a campaign.
type GenerateContentCommand struct {
	CampaignID   uuid.UUID `json:"campaign_id"`
	ContentType  string    `json:"content_type"`
	Language     string    `json:"language,omitempty"`
	Model        string    `json:"model,omitempty"`
	Instructions string    `json:"instructions,omitempty"`

	// Result receives the settled outcome when supplied.
	Result *campaign.GenerateResult `json:"-"`
}

// Type implements command.Message.
func (GenerateContentCommand) Type() string { return generateContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m GenerateContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.CampaignID == uuid.Nil {
		errs["campaign_id"] = validation.NewError("campaigns.campaign.generate.campaign_id_required", "campaign_id is required")
	}
	if strings.TrimSpace(m.ContentType) == "" {
		errs["content_type"] = validation.NewError("campaigns.campaign.generate.content_type_required", "content_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateContentHandler generates campaign content via the campaign service.
type GenerateContentHandler struct {
	inner *commands.Handler[GenerateContentCommand]
}

// NewGenerateContentHandler constructs a handler wired to the provided campaign service.
func NewGenerateContentHandler(service campaign.Service, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateContentCommand]) *GenerateContentHandler {
	exec := func(ctx context.Context, msg GenerateContentCommand) error {
		result, err := service.GenerateContent(ctx, msg.CampaignID, campaign.GenerateContentRequest{
			Type:         msg.ContentType,
			Language:     msg.Language,
			Model:        msg.Model,
			Instructions: msg.Instructions,
		})
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = *result
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateContentCommand]{
		commands.WithLogger[GenerateContentCommand](logger),
		commands.WithOperation[GenerateContentCommand]("campaign.generate_content"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateContentHandler{
		inner: commands.NewHandler[GenerateContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateContentCommand].Execute.
func (h *GenerateContentHandler) Execute(ctx context.Context, msg GenerateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
