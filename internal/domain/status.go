package domain

import "strings"

// ContentState represents lifecycle states for campaign content pieces.
type ContentState string

const (
	// StateDraft indicates content still under preparation.
	StateDraft ContentState = "draft"
	// StateAISuggested marks content produced by an AI provider and awaiting review.
	StateAISuggested ContentState = "ai_suggested"
	// StateReviewed marks content that has been edited or reviewed by a human.
	StateReviewed ContentState = "reviewed"
	// StateApproved marks content cleared for use.
	StateApproved ContentState = "approved"
	// StateRejected marks content declined by a reviewer.
	StateRejected ContentState = "rejected"
)

// KnownStates lists every persisted content state.
func KnownStates() []ContentState {
	return []ContentState{
		StateDraft,
		StateAISuggested,
		StateReviewed,
		StateApproved,
		StateRejected,
	}
}

// IsValidState reports whether the supplied value names a known content state.
func IsValidState(state ContentState) bool {
	switch state {
	case StateDraft, StateAISuggested, StateReviewed, StateApproved, StateRejected:
		return true
	default:
		return false
	}
}

// NormalizeState coerces arbitrary state strings into the persisted
// representation. Unknown values pass through trimmed and lowercased so
// callers can surface them in validation errors.
func NormalizeState(input string) ContentState {
	if strings.TrimSpace(input) == "" {
		return StateDraft
	}
	return ContentState(strings.ToLower(strings.TrimSpace(input)))
}
