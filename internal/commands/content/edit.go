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

const submitEditMessageType = "campaigns.content.submit_edit"

// SubmitEditCommand records a human edit against a content piece.
type SubmitEditCommand struct {
	ContentID uuid.UUID `json:"content_id"`
	Text      string    `json:"text"`
	EditedBy  string    `json:"edited_by"`
	Notes     *string   `json:"notes,omitempty"`
}

// Type implements command.Message.
func (SubmitEditCommand) Type() string { return submitEditMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SubmitEditCommand) Validate() error {
	errs := validation.Errors{}
	if m.ContentID == uuid.Nil {
		errs["content_id"] = validation.NewError("campaigns.content.submit_edit.content_id_required", "content_id is required")
	}
	if strings.TrimSpace(m.Text) == "" {
		errs["text"] = validation.NewError("campaigns.content.submit_edit.text_required", "text is required")
	}
	if strings.TrimSpace(m.EditedBy) == "" {
		errs["edited_by"] = validation.NewError("campaigns.content.submit_edit.edited_by_required", "edited_by is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitEditHandler applies edits via the content service using the shared
// command handler foundation.
type SubmitEditHandler struct {
	inner *commands.Handler[SubmitEditCommand]
}

// NewSubmitEditHandler constructs a handler wired to the provided content service.
func NewSubmitEditHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SubmitEditCommand]) *SubmitEditHandler {
	exec := func(ctx context.Context, msg SubmitEditCommand) error {
		_, err := service.SubmitEdit(ctx, content.SubmitEditRequest{
			ID:       msg.ContentID,
			Text:     msg.Text,
			EditedBy: msg.EditedBy,
			Notes:    msg.Notes,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SubmitEditCommand]{
		commands.WithLogger[SubmitEditCommand](logger),
		commands.WithOperation[SubmitEditCommand]("content.submit_edit"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitEditHandler{
		inner: commands.NewHandler[SubmitEditCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SubmitEditCommand].Execute.
func (h *SubmitEditHandler) Execute(ctx context.Context, msg SubmitEditCommand) error {
	return h.inner.Execute(ctx, msg)
}
