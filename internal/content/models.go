package content

import (
	"encoding/json"
	"time"

	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Campaign is a named container of content pieces sharing a marketing objective.
type Campaign struct {
	bun.BaseModel `bun:"table:campaigns,alias:cg"`

	ID                  uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	Name                string     `bun:"name,notnull"         json:"name"`
	Slug                string     `bun:"slug,notnull"         json:"slug"`
	Description         *string    `bun:"description"          json:"description,omitempty"`
	DefaultInstructions *string    `bun:"default_instructions" json:"default_instructions,omitempty"`
	CreatedAt           time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt           time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Contents []*ContentPiece `bun:"rel:has-many,join:id=campaign_id" json:"contents,omitempty"`
}

// ContentPiece is a single language/variant instance of marketing copy within
// a campaign. The history column holds the append-only edit log as a JSON
// blob; use ParseHistory to read it defensively.
type ContentPiece struct {
	bun.BaseModel `bun:"table:content_pieces,alias:cp"`

	ID          uuid.UUID           `bun:",pk,type:uuid" json:"id"`
	CampaignID  uuid.UUID           `bun:"campaign_id,notnull,type:uuid" json:"campaign_id"`
	Type        string              `bun:"type,notnull" json:"type"`
	Language    string              `bun:"language,notnull" json:"language"`
	Text        string              `bun:"text" json:"text"`
	State       domain.ContentState `bun:"state,notnull,default:'draft'" json:"state"`
	AIMetadata  map[string]any      `bun:"ai_metadata,type:jsonb" json:"ai_metadata,omitempty"`
	History     json.RawMessage     `bun:"history,type:jsonb" json:"history,omitempty"`
	ReviewNotes *string             `bun:"review_notes" json:"review_notes,omitempty"`
	ReviewedBy  *string             `bun:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time          `bun:"reviewed_at,nullzero" json:"reviewed_at,omitempty"`
	EditedBy    *string             `bun:"edited_by" json:"edited_by,omitempty"`
	EditedAt    *time.Time          `bun:"edited_at,nullzero" json:"edited_at,omitempty"`
	CreatedAt   time.Time           `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time           `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Campaign *Campaign       `bun:"rel:belongs-to,join:campaign_id=id" json:"campaign,omitempty"`
	Reviews  []*ReviewAction `bun:"rel:has-many,join:id=content_id"    json:"reviews,omitempty"`
}

// EditHistoryRecord is an immutable snapshot of a single edit. Records are
// appended to the owning piece's history blob and never mutated afterwards.
type EditHistoryRecord struct {
	PreviousText string    `json:"previous_text"`
	NewText      string    `json:"new_text"`
	EditedBy     string    `json:"edited_by"`
	EditedAt     time.Time `json:"edited_at"`
	Notes        *string   `json:"notes,omitempty"`
}

// ReviewAction records a reviewer decision on a content piece, independent of
// the edit-history blob. Rows are append-only.
type ReviewAction struct {
	bun.BaseModel `bun:"table:review_actions,alias:ra"`

	ID        uuid.UUID          `bun:",pk,type:uuid" json:"id"`
	ContentID uuid.UUID          `bun:"content_id,notnull,type:uuid" json:"content_id"`
	Reviewer  string             `bun:"reviewer,notnull" json:"reviewer"`
	Action    domain.ReviewState `bun:"action,notnull" json:"action"`
	Comment   *string            `bun:"comment" json:"comment,omitempty"`
	CreatedAt time.Time          `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`

	Content *ContentPiece `bun:"rel:belongs-to,join:content_id=id" json:"content,omitempty"`
}

// ContentHistory bundles the current text/state of a piece with its parsed
// edit log.
type ContentHistory struct {
	ContentID    uuid.UUID           `json:"content_id"`
	CurrentText  string              `json:"current_text"`
	CurrentState domain.ContentState `json:"current_state"`
	History      []EditHistoryRecord `json:"history"`
}

// TranslateResult reifies the outcome of a single translation. Provider
// failures are represented here rather than returned as errors so bulk
// translation can aggregate per-item outcomes.
type TranslateResult struct {
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
	ContentPiece *ContentPiece `json:"content_piece,omitempty"`
}

// BulkTranslateItem pairs a source content id with its translation outcome.
type BulkTranslateItem struct {
	ContentID uuid.UUID `json:"content_id"`
	TranslateResult
}

// BulkTranslateResult aggregates the settled outcomes of a bulk translation.
// Results preserve the order of the selected input pieces.
type BulkTranslateResult struct {
	TotalProcessed int                 `json:"total_processed"`
	Successful     int                 `json:"successful"`
	Failed         int                 `json:"failed"`
	Results        []BulkTranslateItem `json:"results"`
}
