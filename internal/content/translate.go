package content

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-campaigns/internal/domain"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	"github.com/google/uuid"
)

const emptyTextError = "Cannot translate content with no text"

// Translate produces a sibling content piece in the target language. Provider
// and precondition failures are reified into the result envelope; the error
// return is reserved for missing source pieces and invalid input.
func (s *service) Translate(ctx context.Context, id uuid.UUID, req TranslateContentRequest) (*TranslateResult, error) {
	if strings.TrimSpace(req.TargetLanguage) == "" {
		return nil, ErrTargetLanguageRequired
	}

	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.translatePiece(ctx, source, req)
	return &result, nil
}

// translatePiece runs one translation end to end. It never returns an error:
// every failure mode lands in the TranslateResult so callers can settle bulk
// batches without aborting.
func (s *service) translatePiece(ctx context.Context, source *ContentPiece, req TranslateContentRequest) TranslateResult {
	if s.provider == nil {
		return TranslateResult{Error: ErrProviderNotConfigured.Error()}
	}
	if strings.TrimSpace(source.Text) == "" {
		return TranslateResult{Error: emptyTextError}
	}

	generated, err := s.provider.Translate(ctx, interfaces.TranslateRequest{
		Text:           source.Text,
		SourceLanguage: source.Language,
		TargetLanguage: req.TargetLanguage,
		Model:          req.Model,
	})
	if err != nil {
		s.logger.Warn("translation provider call failed",
			"content_id", source.ID.String(),
			"target_language", req.TargetLanguage,
			"error", err,
		)
		return TranslateResult{Error: err.Error()}
	}

	metadata := cloneMap(generated.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["source_content_id"] = source.ID.String()
	metadata["translated_from"] = source.Language

	now := s.now()
	translated := &ContentPiece{
		ID:         s.id(),
		CampaignID: source.CampaignID,
		Type:       source.Type,
		Language:   req.TargetLanguage,
		Text:       generated.Text,
		State:      domain.StateAISuggested,
		AIMetadata: metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.contents.Create(ctx, translated)
	if err != nil {
		s.logger.Error("persisting translated piece failed",
			"content_id", source.ID.String(),
			"target_language", req.TargetLanguage,
			"error", err,
		)
		return TranslateResult{Error: err.Error()}
	}

	return TranslateResult{Success: true, ContentPiece: created}
}

// BulkTranslate translates every selected piece in a campaign concurrently and
// settles all outcomes: one failed item never aborts the batch. Results keep
// the order of the selected pieces.
func (s *service) BulkTranslate(ctx context.Context, campaignID uuid.UUID, req BulkTranslateRequest) (*BulkTranslateResult, error) {
	if campaignID == uuid.Nil {
		return nil, ErrCampaignIDRequired
	}
	if strings.TrimSpace(req.TargetLanguage) == "" {
		return nil, ErrTargetLanguageRequired
	}

	if s.campaigns != nil {
		if _, err := s.campaigns.GetByID(ctx, campaignID); err != nil {
			return nil, err
		}
	}

	filter := ContentFilter{CampaignID: &campaignID}
	if len(req.ContentIDs) > 0 {
		filter.IDs = req.ContentIDs
	}

	pieces, err := s.contents.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]BulkTranslateItem, len(pieces))
	var wg sync.WaitGroup
	for i, piece := range pieces {
		wg.Add(1)
		go func(slot int, source *ContentPiece) {
			defer wg.Done()
			results[slot] = BulkTranslateItem{
				ContentID: source.ID,
				TranslateResult: s.translatePiece(ctx, source, TranslateContentRequest{
					TargetLanguage: req.TargetLanguage,
					Model:          req.Model,
				}),
			}
		}(i, piece)
	}
	wg.Wait()

	out := &BulkTranslateResult{
		TotalProcessed: len(results),
		Results:        results,
	}
	for _, item := range results {
		if item.Success {
			out.Successful++
		} else {
			out.Failed++
		}
	}

	s.logger.Info("bulk translation settled",
		"campaign_id", campaignID.String(),
		"target_language", req.TargetLanguage,
		"total", out.TotalProcessed,
		"successful", out.Successful,
		"failed", out.Failed,
	)

	return out, nil
}
