package content

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/goliatone/go-campaigns/internal/logging"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/google/uuid"
)

// workflowEntityType identifies content pieces to the workflow engine. It must
// match the entity type used when registering the content workflow definition.
const workflowEntityType = "content_piece"

// Service exposes the content lifecycle use-cases.
type Service interface {
	Create(ctx context.Context, req CreateContentRequest) (*ContentPiece, error)
	Get(ctx context.Context, id uuid.UUID) (*ContentPiece, error)
	List(ctx context.Context, req ListContentRequest) ([]*ContentPiece, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*ContentPiece, error)
	Update(ctx context.Context, req UpdateContentRequest) (*ContentPiece, error)
	Review(ctx context.Context, req ReviewContentRequest) (*ContentPiece, error)
	SubmitEdit(ctx context.Context, req SubmitEditRequest) (*ContentPiece, error)
	History(ctx context.Context, id uuid.UUID) (*ContentHistory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Translate(ctx context.Context, id uuid.UUID, req TranslateContentRequest) (*TranslateResult, error)
	BulkTranslate(ctx context.Context, campaignID uuid.UUID, req BulkTranslateRequest) (*BulkTranslateResult, error)
	ListReviews(ctx context.Context, contentID uuid.UUID) ([]*ReviewAction, error)
}

// CreateContentRequest captures the information required to create a content piece.
type CreateContentRequest struct {
	CampaignID uuid.UUID
	Type       string
	Language   string
	Text       string
	State      domain.ContentState
	AIMetadata map[string]any
}

// ListContentRequest filters content listings. Empty filters return everything.
type ListContentRequest struct {
	State      *domain.ContentState
	CampaignID *uuid.UUID
}

// UpdateContentRequest captures a partial update; only non-nil fields are written.
type UpdateContentRequest struct {
	ID          uuid.UUID
	Text        *string
	State       *domain.ContentState
	ReviewNotes *string
}

// ReviewContentRequest records a reviewer decision on a content piece.
type ReviewContentRequest struct {
	ID          uuid.UUID
	State       domain.ContentState
	ReviewNotes *string
	ReviewedBy  *string
}

// SubmitEditRequest captures a human edit. Every accepted edit appends one
// history record and forces the piece into the reviewed state.
type SubmitEditRequest struct {
	ID       uuid.UUID
	Text     string
	EditedBy string
	Notes    *string
}

// TranslateContentRequest captures the inputs for translating a single piece.
type TranslateContentRequest struct {
	TargetLanguage string
	Model          string
}

// BulkTranslateRequest selects pieces for fan-out translation. When ContentIDs
// is empty every piece in the campaign is selected.
type BulkTranslateRequest struct {
	TargetLanguage string
	Model          string
	ContentIDs     []uuid.UUID
}

// ContentFilter narrows repository listings.
type ContentFilter struct {
	State        *domain.ContentState
	CampaignID   *uuid.UUID
	IDs          []uuid.UUID
	NewestFirst  bool
	WithCampaign bool
}

// ContentRepository abstracts storage operations for content pieces.
type ContentRepository interface {
	Create(ctx context.Context, record *ContentPiece) (*ContentPiece, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContentPiece, error)
	List(ctx context.Context, filter ContentFilter) ([]*ContentPiece, error)
	Update(ctx context.Context, record *ContentPiece) (*ContentPiece, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CampaignRepository resolves campaigns for ownership checks and listing.
type CampaignRepository interface {
	Create(ctx context.Context, record *Campaign) (*Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	List(ctx context.Context) ([]*Campaign, error)
}

// ReviewActionRepository persists the append-only review audit log.
type ReviewActionRepository interface {
	Create(ctx context.Context, record *ReviewAction) (*ReviewAction, error)
	ListByContent(ctx context.Context, contentID uuid.UUID) ([]*ReviewAction, error)
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

// WithProvider wires the AI provider used by translation operations.
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

// WithWorkflow wires a workflow engine consulted by state-changing operations.
func WithWorkflow(engine interfaces.WorkflowEngine) ServiceOption {
	return func(s *service) {
		s.workflow = engine
	}
}

// WithStrictTransitions rejects state changes that are not part of the
// registered content workflow. Off by default: reviewers may override any
// state from any other, matching the permissive review flow.
func WithStrictTransitions(enabled bool) ServiceOption {
	return func(s *service) {
		s.strictTransitions = enabled
	}
}

// WithReviewAudit toggles the append-only ReviewAction log written by Review
// and SubmitEdit.
func WithReviewAudit(enabled bool) ServiceOption {
	return func(s *service) {
		s.reviewAudit = enabled
	}
}

// service implements Service.
type service struct {
	contents          ContentRepository
	campaigns         CampaignRepository
	reviews           ReviewActionRepository
	provider          interfaces.Provider
	workflow          interfaces.WorkflowEngine
	logger            interfaces.Logger
	now               func() time.Time
	id                IDGenerator
	strictTransitions bool
	reviewAudit       bool
}

// NewService constructs a content service with the required dependencies.
func NewService(contents ContentRepository, campaigns CampaignRepository, reviews ReviewActionRepository, opts ...ServiceOption) Service {
	s := &service{
		contents:    contents,
		campaigns:   campaigns,
		reviews:     reviews,
		logger:      logging.NoOp(),
		now:         time.Now,
		id:          uuid.New,
		reviewAudit: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create persists a new content piece owned by the given campaign. The state
// defaults to draft; campaign existence is left to the storage layer's
// foreign-key enforcement.
func (s *service) Create(ctx context.Context, req CreateContentRequest) (*ContentPiece, error) {
	if req.CampaignID == uuid.Nil {
		return nil, ErrCampaignIDRequired
	}
	if strings.TrimSpace(req.Type) == "" {
		return nil, ErrTypeRequired
	}
	if strings.TrimSpace(req.Language) == "" {
		return nil, ErrLanguageRequired
	}

	state := req.State
	if strings.TrimSpace(string(state)) == "" {
		state = domain.StateDraft
	}
	if !domain.IsValidState(state) {
		return nil, ErrStateUnknown
	}

	now := s.now()
	record := &ContentPiece{
		ID:         s.id(),
		CampaignID: req.CampaignID,
		Type:       req.Type,
		Language:   req.Language,
		Text:       req.Text,
		State:      state,
		AIMetadata: cloneMap(req.AIMetadata),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.contents.Create(ctx, record)
}

// Get fetches a content piece by identifier, campaign attached. It is the
// shared existence precondition for every mutating operation.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*ContentPiece, error) {
	if id == uuid.Nil {
		return nil, ErrContentIDRequired
	}
	return s.contents.GetByID(ctx, id)
}

// List returns pieces matching the supplied filters; an empty filter set
// returns everything. Results are unbounded.
func (s *service) List(ctx context.Context, req ListContentRequest) ([]*ContentPiece, error) {
	if req.State != nil && !domain.IsValidState(*req.State) {
		return nil, ErrStateUnknown
	}
	return s.contents.List(ctx, ContentFilter{
		State:        req.State,
		CampaignID:   req.CampaignID,
		WithCampaign: true,
	})
}

// ListByCampaign returns every piece in a campaign, newest created first.
func (s *service) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*ContentPiece, error) {
	if campaignID == uuid.Nil {
		return nil, ErrCampaignIDRequired
	}
	return s.contents.List(ctx, ContentFilter{
		CampaignID:  &campaignID,
		NewestFirst: true,
	})
}

// Update applies a partial update. Only non-nil fields are written; the rest
// stay unchanged. State writes go through the transition guard.
func (s *service) Update(ctx context.Context, req UpdateContentRequest) (*ContentPiece, error) {
	record, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		record.Text = *req.Text
	}
	if req.State != nil {
		if !domain.IsValidState(*req.State) {
			return nil, ErrStateUnknown
		}
		if err := s.guardTransition(ctx, record, *req.State); err != nil {
			return nil, err
		}
		record.State = *req.State
	}
	if req.ReviewNotes != nil {
		record.ReviewNotes = req.ReviewNotes
	}
	record.UpdatedAt = s.now()

	return s.contents.Update(ctx, record)
}

// Review records a reviewer decision: sets the state, stamps ReviewedAt
// unconditionally, and appends a ReviewAction row when auditing is enabled.
func (s *service) Review(ctx context.Context, req ReviewContentRequest) (*ContentPiece, error) {
	if strings.TrimSpace(string(req.State)) == "" {
		return nil, ErrStateRequired
	}
	if !domain.IsValidState(req.State) {
		return nil, ErrStateUnknown
	}

	record, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.guardTransition(ctx, record, req.State); err != nil {
		return nil, err
	}

	now := s.now()
	record.State = req.State
	record.ReviewedAt = &now
	if req.ReviewNotes != nil {
		record.ReviewNotes = req.ReviewNotes
	}
	if req.ReviewedBy != nil {
		record.ReviewedBy = req.ReviewedBy
	}
	record.UpdatedAt = now

	updated, err := s.contents.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.appendReviewAction(ctx, updated.ID, reviewActionForState(req.State), req.ReviewedBy, req.ReviewNotes, now)

	return updated, nil
}

// SubmitEdit applies a human edit: captures the prior text in a new history
// record, replaces the text, and forces the piece into the reviewed state.
// History length strictly increases by one per call.
func (s *service) SubmitEdit(ctx context.Context, req SubmitEditRequest) (*ContentPiece, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextRequired
	}
	if strings.TrimSpace(req.EditedBy) == "" {
		return nil, ErrEditorRequired
	}

	record, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.guardTransition(ctx, record, domain.StateReviewed); err != nil {
		return nil, err
	}

	now := s.now()
	entry := EditHistoryRecord{
		PreviousText: record.Text,
		NewText:      req.Text,
		EditedBy:     req.EditedBy,
		EditedAt:     now,
		Notes:        req.Notes,
	}

	history, err := AppendHistory(record.History, entry)
	if err != nil {
		return nil, err
	}

	editedBy := req.EditedBy
	record.Text = req.Text
	record.State = domain.StateReviewed
	record.EditedBy = &editedBy
	record.EditedAt = &now
	record.History = history
	if req.Notes != nil {
		record.ReviewNotes = req.Notes
	}
	record.UpdatedAt = now

	updated, err := s.contents.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.appendReviewAction(ctx, updated.ID, domain.ReviewEdited, &editedBy, req.Notes, now)

	return updated, nil
}

// History returns the parsed edit log together with the current text and
// state. Malformed stored blobs yield an empty log, never an error.
func (s *service) History(ctx context.Context, id uuid.UUID) (*ContentHistory, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ContentHistory{
		ContentID:    record.ID,
		CurrentText:  record.Text,
		CurrentState: record.State,
		History:      ParseHistory(record.History),
	}, nil
}

// Delete removes a content piece permanently after verifying it exists.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.contents.Delete(ctx, id)
}

// ListReviews returns the append-only review audit trail for a piece.
func (s *service) ListReviews(ctx context.Context, contentID uuid.UUID) ([]*ReviewAction, error) {
	if _, err := s.Get(ctx, contentID); err != nil {
		return nil, err
	}
	if s.reviews == nil {
		return []*ReviewAction{}, nil
	}
	return s.reviews.ListByContent(ctx, contentID)
}

// guardTransition consults the workflow engine when strict transitions are
// enabled. Writing the current state again is always allowed.
func (s *service) guardTransition(ctx context.Context, record *ContentPiece, target domain.ContentState) error {
	if !s.strictTransitions || s.workflow == nil {
		return nil
	}
	if target == record.State {
		return nil
	}

	_, err := s.workflow.Transition(ctx, interfaces.TransitionInput{
		EntityID:     record.ID,
		EntityType:   workflowEntityType,
		CurrentState: interfaces.WorkflowState(record.State),
		TargetState:  interfaces.WorkflowState(target),
	})
	if err != nil {
		return &InvalidTransitionError{
			ContentID: record.ID,
			From:      record.State,
			To:        target,
		}
	}
	return nil
}

// appendReviewAction writes one audit row. Failures are logged, not
// propagated: the piece update has already been persisted and the audit log
// is advisory.
func (s *service) appendReviewAction(ctx context.Context, contentID uuid.UUID, action domain.ReviewState, reviewer *string, comment *string, at time.Time) {
	if !s.reviewAudit || s.reviews == nil || action == "" {
		return
	}
	if reviewer == nil || strings.TrimSpace(*reviewer) == "" {
		return
	}

	record := &ReviewAction{
		ID:        s.id(),
		ContentID: contentID,
		Reviewer:  *reviewer,
		Action:    action,
		Comment:   comment,
		CreatedAt: at,
	}
	if _, err := s.reviews.Create(ctx, record); err != nil {
		s.logger.Warn("review audit append failed", "content_id", contentID.String(), "error", err)
	}
}

// reviewActionForState maps review states onto audit actions. States outside
// the approve/reject decisions carry no audit action.
func reviewActionForState(state domain.ContentState) domain.ReviewState {
	switch state {
	case domain.StateApproved:
		return domain.ReviewApproved
	case domain.StateRejected:
		return domain.ReviewRejected
	default:
		return ""
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
