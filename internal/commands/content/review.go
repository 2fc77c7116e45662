package contentcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-campaigns/internal/commands"
	"github.com/goliatone/go-campaigns/internal/content"
	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/google/uuid"
)

const reviewContentMessageType = "campaigns.content.review"

// ReviewContentCommand records a reviewer decision on a content piece.
type ReviewContentCommand struct {
	ContentID   uuid.UUID           `json:"content_id"`
	State       domain.ContentState `json:"state"`
	ReviewNotes *string             `json:"review_notes,omitempty"`
	ReviewedBy  *string             `json:"reviewed_by,omitempty"`
}

// Type implements command.Message.
func (ReviewContentCommand) Type() string { return reviewContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ReviewContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.ContentID == uuid.Nil {
		errs["content_id"] = validation.NewError("campaigns.content.review.content_id_required", "content_id is required")
	}
	if strings.TrimSpace(string(m.State)) == "" {
		errs["state"] = validation.NewError("campaigns.content.review.state_required", "state is required")
	} else if !domain.IsValidState(m.State) {
		errs["state"] = validation.NewError("campaigns.content.review.state_unknown", "state is not a known content state")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewContentHandler records review decisions via the content service.
type ReviewContentHandler struct {
	inner *commands.Handler[ReviewContentCommand]
}

// NewReviewContentHandler constructs a handler wired to the provided content service.
func NewReviewContentHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReviewContentCommand]) *ReviewContentHandler {
	exec := func(ctx context.Context, msg ReviewContentCommand) error {
		_, err := service.Review(ctx, content.ReviewContentRequest{
			ID:          msg.ContentID,
			State:       msg.State,
			ReviewNotes: msg.ReviewNotes,
			ReviewedBy:  msg.ReviewedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[ReviewContentCommand]{
		commands.WithLogger[ReviewContentCommand](logger),
		commands.WithOperation[ReviewContentCommand]("content.review"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReviewContentHandler{
		inner: commands.NewHandler[ReviewContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReviewContentCommand].Execute.
func (h *ReviewContentHandler) Execute(ctx context.Context, msg ReviewContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
