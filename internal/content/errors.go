package content

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrContentIDRequired      = errors.New("content: content id required")
	ErrCampaignIDRequired     = errors.New("content: campaign id required")
	ErrTypeRequired           = errors.New("content: type is required")
	ErrLanguageRequired       = errors.New("content: language is required")
	ErrTextRequired           = errors.New("content: text is required")
	ErrEditorRequired         = errors.New("content: edited_by is required")
	ErrStateRequired          = errors.New("content: state is required")
	ErrStateUnknown           = errors.New("content: unknown content state")
	ErrTargetLanguageRequired = errors.New("content: target language is required")
	ErrProviderNotConfigured  = errors.New("content: ai provider not configured")
	ErrTransitionNotAllowed   = errors.New("content: state transition not allowed")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// InvalidTransitionError captures rejected state changes when strict
// transitions are enabled.
type InvalidTransitionError struct {
	ContentID uuid.UUID
	From      domain.ContentState
	To        domain.ContentState
}

func (e *InvalidTransitionError) Error() string {
	if e == nil {
		return ErrTransitionNotAllowed.Error()
	}
	return fmt.Sprintf("%s: %s -> %s", ErrTransitionNotAllowed.Error(), e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrTransitionNotAllowed
}
