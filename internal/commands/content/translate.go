package contentcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-campaigns/internal/commands"
	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	translateContentMessageType = "campaigns.content.translate"
	bulkTranslateMessageType    = "campaigns.content.bulk_translate"
)

// TranslateContentCommand requests translation of a single content piece.
type TranslateContentCommand struct {
	ContentID      uuid.UUID `json:"content_id"`
	TargetLanguage string    `json:"target_language"`
	Model          string    `json:"model,omitempty"`

	// Result receives the settled outcome when supplied.
	Result *content.TranslateResult `json:"-"`
}

// Type implements command.Message.
func (TranslateContentCommand) Type() string { return translateContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m TranslateContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.ContentID == uuid.Nil {
		errs["content_id"] = validation.NewError("campaigns.content.translate.content_id_required", "content_id is required")
	}
	if strings.TrimSpace(m.TargetLanguage) == "" {
		errs["target_language"] = validation.NewError("campaigns.content.translate.target_language_required", "target_language is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TranslateContentHandler translates single pieces via the content service.
type TranslateContentHandler struct {
	inner *commands.Handler[TranslateContentCommand]
}

// NewTranslateContentHandler constructs a handler wired to the provided content service.
func NewTranslateContentHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[TranslateContentCommand]) *TranslateContentHandler {
	exec := func(ctx context.Context, msg TranslateContentCommand) error {
		result, err := service.Translate(ctx, msg.ContentID, content.TranslateContentRequest{
			TargetLanguage: msg.TargetLanguage,
			Model:          msg.Model,
		})
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = *result
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[TranslateContentCommand]{
		commands.WithLogger[TranslateContentCommand](logger),
		commands.WithOperation[TranslateContentCommand]("content.translate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &TranslateContentHandler{
		inner: commands.NewHandler[TranslateContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[TranslateContentCommand].Execute.
func (h *TranslateContentHandler) Execute(ctx context.Context, msg TranslateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BulkTranslateCommand requests translation of every selected piece in a campaign.
type BulkTranslateCommand struct {
	CampaignID     uuid.UUID   `json:"campaign_id"`
	TargetLanguage string      `json:"target_language"`
	Model          string      `json:"model,omitempty"`
	ContentIDs     []uuid.UUID `json:"content_ids,omitempty"`

	// Result receives the settled aggregate when supplied.
	Result *content.BulkTranslateResult `json:"-"`
}

// Type implements command.Message.
func (BulkTranslateCommand) Type() string { return bulkTranslateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m BulkTranslateCommand) Validate() error {
	errs := validation.Errors{}
	if m.CampaignID == uuid.Nil {
		errs["campaign_id"] = validation.NewError("campaigns.content.bulk_translate.campaign_id_required", "campaign_id is required")
	}
	if strings.TrimSpace(m.TargetLanguage) == "" {
		errs["target_language"] = validation.NewError("campaigns.content.bulk_translate.target_language_required", "target_language is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkTranslateHandler fans translations out via the content service.
type BulkTranslateHandler struct {
	inner *commands.Handler[BulkTranslateCommand]
}

// NewBulkTranslateHandler constructs a handler wired to the provided content service.
func NewBulkTranslateHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BulkTranslateCommand]) *BulkTranslateHandler {
	exec := func(ctx context.Context, msg BulkTranslateCommand) error {
		result, err := service.BulkTranslate(ctx, msg.CampaignID, content.BulkTranslateRequest{
			TargetLanguage: msg.TargetLanguage,
			Model:          msg.Model,
			ContentIDs:     msg.ContentIDs,
		})
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = *result
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BulkTranslateCommand]{
		commands.WithLogger[BulkTranslateCommand](logger),
		commands.WithOperation[BulkTranslateCommand]("content.bulk_translate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BulkTranslateHandler{
		inner: commands.NewHandler[BulkTranslateCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BulkTranslateCommand].Execute.
func (h *BulkTranslateHandler) Execute(ctx context.Context, msg BulkTranslateCommand) error {
	return h.inner.Execute(ctx, msg)
}
